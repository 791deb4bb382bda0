package inmemory

import (
	"context"
	"sync"
	"time"
	"todoList/internal/models/todo"

	"github.com/google/uuid"
)

type TodoStorage struct {
	storage map[uuid.UUID]*todo.Todo
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTodoStorage() *TodoStorage {
	return &TodoStorage{
		storage: make(map[uuid.UUID]*todo.Todo),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TodoStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TodoStorage) ListByUser(ctx context.Context, userIdentifier string) ([]*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	// порядок вставки совпадает с порядком created_at
	todos := []*todo.Todo{}
	for _, id := range s.ids {
		t, ok := s.storage[id]
		if !ok {
			continue
		}
		if t.UserIdentifier == userIdentifier {
			copied := *t
			todos = append(todos, &copied)
		}
	}
	return todos, nil
}

func (s *TodoStorage) Create(ctx context.Context, todoToCreate *todo.Todo) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	todoToCreate.ID = uuid.New()
	todoToCreate.Completed = false
	todoToCreate.CreatedAt = time.Now()

	stored := *todoToCreate
	s.storage[stored.ID] = &stored
	s.ids = append(s.ids, stored.ID)
	return nil
}

func (s *TodoStorage) Update(ctx context.Context, id uuid.UUID, patch todo.Patch) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	t, ok := s.storage[id]
	if !ok {
		// как и в SQL-варианте: обновление несуществующей строки не ошибка
		return nil
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return nil
}

func (s *TodoStorage) RewriteTitle(ctx context.Context, id uuid.UUID, title string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	t, ok := s.storage[id]
	if !ok {
		return nil
	}

	t.Title = title
	return nil
}

func (s *TodoStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}
