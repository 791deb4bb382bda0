package service

import (
	"context"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/todo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики

type TodoService struct {
	repo TodoRepository
	// привилегированный доступ для колбэка перезаписи; nil, если не настроен
	adminRepo TodoRepository
	notifier  Notifier
}

func NewTodoService(repo TodoRepository, adminRepo TodoRepository, notifier Notifier) TodoService {
	return TodoService{
		repo:      repo,
		adminRepo: adminRepo,
		notifier:  notifier,
	}
}

func (s *TodoService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

func (s *TodoService) ListTodos(ctx context.Context, userIdentifier string) ([]*todo.Todo, error) {
	if userIdentifier == "" {
		return nil, NewValidationError("User not provided")
	}

	todos, err := s.repo.ListByUser(ctx, userIdentifier)
	if err != nil {
		return nil, NewStorageError(err)
	}

	return todos, nil
}

func (s *TodoService) CreateTodo(ctx context.Context, title, userIdentifier string) (*todo.Todo, error) {
	if title == "" || userIdentifier == "" {
		return nil, NewValidationError("Title and user are required")
	}

	t := &todo.Todo{
		Title:          title,
		UserIdentifier: userIdentifier,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, NewStorageError(err)
	}

	s.dispatchNotify(t.ID, t.Title)

	return t, nil
}

// уведомление уходит в отдельной горутине и не задерживает ответ;
// контекст запроса не используется, чтобы завершение запроса не отменило отправку
func (s *TodoService) dispatchNotify(id uuid.UUID, title string) {
	if s.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.notifier.Notify(ctx, id, title); err != nil {
			logger.Warn("Service: Не удалось отправить уведомление",
				zap.String("todo_id", id.String()),
				zap.Error(err))
		}
	}()
}

func (s *TodoService) UpdateTodo(ctx context.Context, id uuid.UUID, options ...todo.PatchOption) error {
	if id == uuid.Nil {
		return NewValidationError("Task id is required")
	}

	patch := todo.NewPatch(options...)

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return NewStorageError(err)
	}

	return nil
}

func (s *TodoService) RewriteTitle(ctx context.Context, id uuid.UUID, improvedTitle string) error {
	if id == uuid.Nil || improvedTitle == "" {
		return NewValidationError("id and improvedTitle are required")
	}

	if s.adminRepo == nil {
		logger.Warn("Service: Привилегированное подключение не настроено")
		return NewConfigurationError("Admin storage not configured")
	}

	if err := s.adminRepo.RewriteTitle(ctx, id, improvedTitle); err != nil {
		return NewStorageError(err)
	}

	return nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return NewValidationError("Task id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return NewStorageError(err)
	}

	return nil
}
