package dto

import (
	"time"
	"todoList/internal/models/todo"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title string `json:"title"`
	User  string `json:"user"`
}

type UpdateTodoRequest struct {
	ID        string  `json:"id"`
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type DeleteTodoRequest struct {
	ID string `json:"id"`
}

type RewriteTitleRequest struct {
	ID            string `json:"id"`
	ImprovedTitle string `json:"improvedTitle"`
}

type TodoResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Completed      bool      `json:"completed"`
	UserIdentifier string    `json:"user_identifier"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromTodo(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:             t.ID,
		Title:          t.Title,
		Completed:      t.Completed,
		UserIdentifier: t.UserIdentifier,
		CreatedAt:      t.CreatedAt,
	}
}

func FromTodoList(todos []*todo.Todo) []TodoResponse {
	result := make([]TodoResponse, len(todos))
	for i, t := range todos {
		result[i] = FromTodo(t)
	}
	return result
}
