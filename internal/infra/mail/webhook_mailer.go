package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"roster/internal/domain/service"

	"github.com/pkg/errors"
)

// webhookMailer delivers mail events by POSTing them as JSON to a delivery
// endpoint (e.g. a local mail relay in development).
type webhookMailer struct {
	endpoint   string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookMailer creates a mailer that hands messages to an HTTP endpoint.
func NewWebhookMailer(endpoint, from string, logger *slog.Logger) service.Mailer {
	return &webhookMailer{
		endpoint: endpoint,
		from:     from,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// SendWelcome posts the post-signup greeting to the delivery endpoint.
func (m *webhookMailer) SendWelcome(ctx context.Context, email, name string) error {
	return m.post(ctx, welcomeMail(m.from, email, name))
}

// SendCancellation posts the account-deletion farewell to the delivery endpoint.
func (m *webhookMailer) SendCancellation(ctx context.Context, email, name string) error {
	return m.post(ctx, cancellationMail(m.from, email, name))
}

func (m *webhookMailer) post(ctx context.Context, mail service.Mail) error {
	body, err := json.Marshal(mail)
	if err != nil {
		return errors.WithStack(err)
	}

	m.logger.Info("[WebhookMailer] Delivering mail event",
		slog.String("endpoint", m.endpoint),
		slog.String("subject", mail.Subject),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (m *webhookMailer) Close() error {
	return nil
}
