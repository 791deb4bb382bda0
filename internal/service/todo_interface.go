package service

import (
	"context"
	"todoList/internal/models/todo"

	"github.com/google/uuid"
)

type TodoRepository interface {
	HealthCheck(context.Context) error
	ListByUser(context.Context, string) ([]*todo.Todo, error)
	Create(context.Context, *todo.Todo) error
	Update(context.Context, uuid.UUID, todo.Patch) error
	RewriteTitle(context.Context, uuid.UUID, string) error
	Delete(context.Context, uuid.UUID) error
}

// Notifier — исходящее уведомление о созданной задаче.
// Вызов всегда отсоединяется от запроса, ошибка только логируется.
type Notifier interface {
	Notify(ctx context.Context, id uuid.UUID, title string) error
}
