package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lamsatk/lamsat-backend/internal/models"
)

// submissionPayload — тело webhook-а о новой заявке.
type submissionPayload struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type"`
	City        string `json:"city"`
	RefCode     string `json:"ref_code"`
}

// WebhookNotifier отправляет уведомление о новой заявке на внешний URL.
// Best-effort коллаборатор: вызывающая сторона логирует и глотает ошибки.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (n *WebhookNotifier) NotifySubmission(ctx context.Context, req *models.Request) error {
	body, err := json.Marshal(submissionPayload{
		Name:        req.Name,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		City:        req.City,
		RefCode:     req.RefCode,
	})
	if err != nil {
		return fmt.Errorf("notify: marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: webhook responded %d", resp.StatusCode)
	}
	return nil
}

// NopNotifier используется, когда webhook не сконфигурирован.
type NopNotifier struct{}

func (NopNotifier) NotifySubmission(ctx context.Context, req *models.Request) error {
	return nil
}
