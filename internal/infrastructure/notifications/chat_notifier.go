package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"abrigo_xpto/internal/domain/entities"
	"abrigo_xpto/internal/usecase/interfaces"
)

var ErrMissingChatServiceURL = errors.New("missing CHAT_SERVICE_URL")
var ErrChatNotifierNotConfigured = errors.New("chat notifier not configured")

const defaultPublishTimeout = 5 * time.Second

// ChatNotifier delivers lifecycle events to the shelter chat backend, which
// fans them out to the adopter's conversation and the staff channel.
//
// Delivery is best-effort by contract: the engine has already committed the
// state change when Publish runs, so a failure here is surfaced as an error
// for the caller to log, never to roll back.

type ChatNotifier struct {
	client   *http.Client
	baseURL  string
	mockMode bool
}

var _ interfaces.INotificationDispatcher = (*ChatNotifier)(nil)

func NewChatNotifier(baseURL string) (*ChatNotifier, error) {
	if isChatNotifierMockEnabled() {
		log.Printf("[adoption][notifier] mock mode enabled")
		return &ChatNotifier{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[adoption][notifier] missing CHAT_SERVICE_URL")
		return nil, ErrMissingChatServiceURL
	}

	return &ChatNotifier{
		client:  &http.Client{Timeout: defaultPublishTimeout},
		baseURL: baseURL,
	}, nil
}

func (n *ChatNotifier) Publish(ctx context.Context, event entities.LifecycleEvent) error {
	if n != nil && n.mockMode {
		log.Printf("[adoption][notifier] mock publish application_id=%s event=%s", event.ApplicationID, event.Type)
		return nil
	}
	if n == nil || n.client == nil {
		return ErrChatNotifierNotConfigured
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[adoption][notifier] publish request failed application_id=%s event=%s err=%v", event.ApplicationID, event.Type, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[adoption][notifier] publish rejected application_id=%s event=%s status=%d body=%s", event.ApplicationID, event.Type, resp.StatusCode, snippet)
		return fmt.Errorf("chat service returned status %d", resp.StatusCode)
	}

	log.Printf("[adoption][notifier] publish success application_id=%s event=%s", event.ApplicationID, event.Type)
	return nil
}

func isChatNotifierMockEnabled() bool {
	for _, key := range []string{"CHAT_NOTIFIER_MOCK", "NOTIFICATIONS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
