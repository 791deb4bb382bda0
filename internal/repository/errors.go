package repository

import "errors"

var (
	ErrNotFound = errors.New("запись не найдена")
	ErrNoResult = errors.New("строка не возвращена после вставки")
)
