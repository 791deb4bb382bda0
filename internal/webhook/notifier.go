package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"todoList/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier отправляет уведомление о созданной задаче внешнему
// workflow-сервису. Доставка at-most-once: без повторов и очереди.
type Notifier struct {
	url    string
	client *http.Client
}

type notifyPayload struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func NewNotifier(url string, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (n *Notifier) Notify(ctx context.Context, id uuid.UUID, title string) error {
	if n.url == "" {
		logger.Warn("Webhook: URL не настроен, уведомление пропущено",
			zap.String("todo_id", id.String()))
		return nil
	}

	body, err := json.Marshal(notifyPayload{ID: id, Title: title})
	if err != nil {
		return fmt.Errorf("сериализация уведомления: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("отправка уведомления: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("уведомление отклонено: статус %d", resp.StatusCode)
	}

	logger.Info("Webhook: Уведомление доставлено",
		zap.String("todo_id", id.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("ms", time.Since(start)))
	return nil
}
