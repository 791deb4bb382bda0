package handlers

import (
	"context"
	"todoList/internal/models/todo"

	"github.com/google/uuid"
)

type Service interface {
	HealthCheck(context.Context) error
	ListTodos(context.Context, string) ([]*todo.Todo, error)
	CreateTodo(context.Context, string, string) (*todo.Todo, error)
	UpdateTodo(context.Context, uuid.UUID, ...todo.PatchOption) error
	RewriteTitle(context.Context, uuid.UUID, string) error
	DeleteTodo(context.Context, uuid.UUID) error
}
