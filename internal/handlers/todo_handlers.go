package handlers

import (
	"encoding/json"
	"net/http"
	"time"
	"todoList/internal/handlers/dto"
	"todoList/internal/logger"
	"todoList/internal/models/todo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TodoHandler struct {
	TodoService Service
}

func NewTodoHandler(todoService Service) TodoHandler {
	return TodoHandler{
		TodoService: todoService,
	}
}

// GET /todos?user=<identifier>
func (s *TodoHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user := r.URL.Query().Get("user")

	todos, err := s.TodoService.ListTodos(r.Context(), user)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "list_todos"),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.String("user", user),
		zap.Int("count", len(todos)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithBody(w, http.StatusOK, dto.FromTodoList(todos))
}

// POST /todos
func (s *TodoHandler) PostTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	created, err := s.TodoService.CreateTodo(r.Context(), request.Title, request.User)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "create_todo"),
			zap.String("client_ip", r.RemoteAddr),
			zap.Duration("ms", time.Since(start)))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("todo_id", created.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithBody(w, http.StatusOK, dto.FromTodo(created))
}

// PUT /todos
func (s *TodoHandler) PutTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.UpdateTodoRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, ok := parseTodoID(w, r, request.ID)
	if !ok {
		return
	}

	options := []todo.PatchOption{}
	if request.Title != nil {
		options = append(options, todo.WithTitle(*request.Title))
	}
	if request.Completed != nil {
		options = append(options, todo.WithCompleted(*request.Completed))
	}

	if err := s.TodoService.UpdateTodo(r.Context(), id, options...); err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "update_todo"),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.String("todo_id", request.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithSuccess(w)
}

// DELETE /todos
func (s *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.DeleteTodoRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, ok := parseTodoID(w, r, request.ID)
	if !ok {
		return
	}

	if err := s.TodoService.DeleteTodo(r.Context(), id); err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "delete_todo"),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.String("todo_id", request.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithSuccess(w)
}

// POST /todos/ai — колбэк внешнего workflow-сервиса.
// Перезаписывает заголовок без проверки владельца.
func (s *TodoHandler) RewriteTitle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.RewriteTitleRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if request.ID == "" || request.ImprovedTitle == "" {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("error", "empty_field"),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "id and improvedTitle are required")
		return
	}

	id, ok := parseTodoID(w, r, request.ID)
	if !ok {
		return
	}

	if err := s.TodoService.RewriteTitle(r.Context(), id, request.ImprovedTitle); err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "rewrite_title"),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Заголовок перезаписан",
		zap.String("todo_id", request.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithSuccess(w)
}

// GET /todos/ai — проверка живости колбэка из браузера
func (s *TodoHandler) RewriteStatus(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Проверка колбэка")

	responseWithJSON(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("message", "API /todos/ai is working"),
	)
}

// GET /health
func (s *TodoHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := s.TodoService.HealthCheck(r.Context()); err != nil {
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unhealthy"),
			toPayload("service", "todo-list"),
		)
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("service", "todo-list"),
	)
}

func parseTodoID(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	if raw == "" {
		// пустой id отдаём сервису, там единая валидация
		return uuid.Nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Invalid task id")
		return uuid.Nil, false
	}

	return id, true
}
