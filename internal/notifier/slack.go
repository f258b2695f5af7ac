package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maskins/ticketwatch/internal/performance"
)

const slackTimeout = 10 * time.Second

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	eventURL   string
	httpClient *http.Client
}

// NewSlackNotifier creates a Slack webhook notifier.
func NewSlackNotifier(webhookURL, eventURL string) (*SlackNotifier, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	return &SlackNotifier{
		webhookURL: webhookURL,
		eventURL:   eventURL,
		httpClient: &http.Client{Timeout: slackTimeout},
	}, nil
}

// Notify posts one message listing the newly bookable performances.
// Nothing is sent when the list is empty.
func (n *SlackNotifier) Notify(records []performance.Record) error {
	if len(records) == 0 {
		return nil
	}

	payload := map[string]string{"text": formatMessage(n.eventURL, records)}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
