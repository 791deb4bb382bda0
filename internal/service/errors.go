package service

import "fmt"

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeStorage       = "STORAGE_ERROR"
	CodeConfiguration = "CONFIGURATION_ERROR"
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewValidationError(message string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: message,
	}
}

// сообщение хранилища уходит в тело ответа как есть
func NewStorageError(err error) *BusinessError {
	return &BusinessError{
		Code:    CodeStorage,
		Message: err.Error(),
		Err:     err,
	}
}

func NewConfigurationError(message string) *BusinessError {
	return &BusinessError{
		Code:    CodeConfiguration,
		Message: message,
	}
}
