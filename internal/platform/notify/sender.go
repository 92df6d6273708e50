// Package notify forwards security alerts to the external notification
// sender. Delivery is fire-and-forget from the core's perspective.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
)

type Sender struct {
	baseURL string
	http    *http.Client
}

func NewSender(baseURL string) *Sender {
	return &Sender{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type alertPayload struct {
	UserID   string `json:"userId"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func (s *Sender) SendAlert(ctx context.Context, userID string, alert *domain.SecurityAlert) error {
	body, err := json.Marshal(alertPayload{
		UserID:   userID,
		Type:     string(alert.Type),
		Severity: string(alert.Severity),
		Message:  alert.Message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/alerts", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("alert delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("alert delivery returned status %d", resp.StatusCode)
	}
	return nil
}
