package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"todoList/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate применяет встроенные миграции через отдельное stdlib-соединение
func (s *Storage) Migrate() error {
	logger.Info("Repository: Применение миграций")

	db, err := sql.Open("pgx", s.connString)
	if err != nil {
		logger.Error("Repository: Не удалось открыть соединение для миграций", err)
		return fmt.Errorf("открытие соединения для миграций: %w", err)
	}
	defer db.Close()

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		logger.Error("Repository: Не удалось прочитать миграции", err)
		return fmt.Errorf("чтение миграций: %w", err)
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		logger.Error("Repository: Не удалось создать драйвер миграций", err)
		return fmt.Errorf("создание драйвера миграций: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		logger.Error("Repository: Не удалось создать мигратор", err)
		return fmt.Errorf("создание мигратора: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("Repository: Не удалось применить миграции", err)
		return fmt.Errorf("применение миграций: %w", err)
	}

	logger.Info("Repository: Миграции применены")
	return nil
}
