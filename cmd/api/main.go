package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"todoList/internal/config"
	"todoList/internal/handlers"
	"todoList/internal/logger"
	"todoList/internal/middleware"
	"todoList/internal/repository/todo/inmemory"
	"todoList/internal/repository/todo/postgres"
	"todoList/internal/service"
	"todoList/internal/web"
	"todoList/internal/webhook"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logging.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var todoRepo service.TodoRepository
	var adminRepo service.TodoRepository

	switch cfg.Repository.Type {
	case "inmemory":
		storage := inmemory.NewTodoStorage()
		todoRepo = storage
		// в памяти разделения привилегий нет
		adminRepo = storage
	default:
		storage, err := postgres.New(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("Не удалось подключиться к PostgreSQL", err)
			os.Exit(1)
		}
		defer storage.Close()

		if err := storage.Migrate(); err != nil {
			logger.Error("Не удалось применить миграции", err)
			os.Exit(1)
		}

		todoRepo = storage

		// отдельное подключение с сервисными правами для колбэка;
		// без него POST /todos/ai отвечает 500
		if cfg.Database.AdminURL != "" {
			adminStorage, err := postgres.New(ctx, cfg.Database.AdminURL)
			if err != nil {
				logger.Error("Не удалось подключиться с сервисными правами", err)
				os.Exit(1)
			}
			defer adminStorage.Close()
			adminRepo = adminStorage
		}
	}

	notifier := webhook.NewNotifier(cfg.Webhook.URL, cfg.Webhook.Timeout)
	todoService := service.NewTodoService(todoRepo, adminRepo, notifier)
	todoHandler := handlers.NewTodoHandler(&todoService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(100))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.GetTodos)      // GET /todos?user=
		r.Post("/", todoHandler.PostTodo)     // POST /todos
		r.Put("/", todoHandler.PutTodo)       // PUT /todos
		r.Delete("/", todoHandler.DeleteTodo) // DELETE /todos

		r.Get("/ai", todoHandler.RewriteStatus) // GET /todos/ai
		r.Post("/ai", todoHandler.RewriteTitle) // POST /todos/ai
	})

	r.Get("/health", todoHandler.HealthCheck)
	r.Handle("/*", web.Handler())

	server := &http.Server{
		Addr:              cfg.GetServerAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started", zap.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Получен сигнал завершения")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Сервер остановился с ошибкой", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}
}
