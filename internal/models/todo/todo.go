package todo

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Completed      bool      `json:"completed" db:"completed"`
	UserIdentifier string    `json:"user_identifier" db:"user_identifier"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
