package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/todo"
	repo "todoList/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Storage struct {
	pool       *pgxpool.Pool
	connString string
}

func New(ctx context.Context, connString string) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: Ошибка загрузки конфига", err)
		return nil, fmt.Errorf("загрузка конфига: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: Ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	logger.Info("Repository: Успешное создание подключения к PostgreSQL")
	return &Storage{pool: pool, connString: connString}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: Закрытие всех соединений PostgreSQL")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	if err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

func (s *Storage) ListByUser(ctx context.Context, userIdentifier string) ([]*todo.Todo, error) {
	start := time.Now()

	query := `SELECT
				id,
				title,
				completed,
				user_identifier,
				created_at
				FROM todos
				WHERE user_identifier = $1
				ORDER BY created_at ASC`

	rows, err := s.pool.Query(ctx, query, userIdentifier)
	if err != nil {
		logger.Error("Repository: Не удалось получить задачи", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задач: %w", err)
	}

	defer rows.Close()

	todos := []*todo.Todo{}

	for rows.Next() {
		t := &todo.Todo{}

		err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Completed,
			&t.UserIdentifier,
			&t.CreatedAt,
		)

		if err != nil {
			logger.Error("Repository: Ошибка сканирования задачи", err)
			return nil, fmt.Errorf("сканирование задачи: %w", err)
		}

		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return todos, nil
}

func (s *Storage) Create(ctx context.Context, todoToCreate *todo.Todo) error {
	start := time.Now()

	query := `INSERT INTO todos
				(title, user_identifier)
				VALUES ($1, $2)
				RETURNING id, completed, created_at`

	err := s.pool.QueryRow(ctx, query,
		todoToCreate.Title,
		todoToCreate.UserIdentifier,
	).Scan(
		&todoToCreate.ID,
		&todoToCreate.Completed,
		&todoToCreate.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Error("Repository: Вставка не вернула строку", err)
			return repo.ErrNoResult
		}
		logger.Error("Repository: Не удалось добавить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

// частичное обновление: пишутся только заданные поля патча
func (s *Storage) Update(ctx context.Context, id uuid.UUID, patch todo.Patch) error {
	start := time.Now()

	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, "title = $"+strconv.Itoa(len(args)))
	}

	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		sets = append(sets, "completed = $"+strconv.Itoa(len(args)))
	}

	// пустой патч — ничего не меняем, это не ошибка
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE todos SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE id = $" + strconv.Itoa(len(args))

	_, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: Не удалось обновить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("обновление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) RewriteTitle(ctx context.Context, id uuid.UUID, title string) error {
	start := time.Now()

	query := `UPDATE todos
				SET title = $1
				WHERE id = $2`

	_, err := s.pool.Exec(ctx, query, title, id)
	if err != nil {
		logger.Error("Repository: Не удалось перезаписать заголовок", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("перезапись заголовка: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	query := `DELETE FROM todos
				WHERE id = $1`

	_, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Repository: Не удалось удалить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}
