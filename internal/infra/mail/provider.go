// Package mail provides transactional email delivery through pluggable providers.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"roster/config"
	"roster/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerLog     = "log"
	providerWebhook = "webhook"
	providerPubSub  = "pubsub"
)

// logMailer is the fallback provider: it only logs the message.
// Used in development and whenever no delivery channel is configured.
type logMailer struct {
	from   string
	logger *slog.Logger
}

func (m *logMailer) SendWelcome(ctx context.Context, email, name string) error {
	m.logger.InfoContext(ctx, "[LogMailer] welcome email",
		slog.String("from", m.from),
		slog.String("to", email),
		slog.String("name", name),
	)

	return nil
}

func (m *logMailer) SendCancellation(ctx context.Context, email, name string) error {
	m.logger.InfoContext(ctx, "[LogMailer] cancellation email",
		slog.String("from", m.from),
		slog.String("to", email),
		slog.String("name", name),
	)

	return nil
}

func (m *logMailer) Close() error {
	return nil
}

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates a Mailer based on configuration
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerLog {
		logger.Info("Mail delivery not configured, using log mailer")

		return &logMailer{from: fromAddress(cfg), logger: logger}, nil
	}

	var mailer service.Mailer
	var err error

	switch cfg.Provider {
	case providerWebhook:
		if cfg.WebhookEndpoint == "" {
			return nil, errors.New("webhook endpoint is required for webhook mail provider")
		}
		logger.Info("Using webhook mailer",
			slog.String("endpoint", cfg.WebhookEndpoint),
		)

		mailer = NewWebhookMailer(cfg.WebhookEndpoint, fromAddress(cfg), logger)

	case providerPubSub:
		if cfg.TopicURL == "" {
			return nil, errors.New("topic URL is required for pubsub mail provider")
		}
		logger.Info("Using pubsub mailer",
			slog.String("topic_url", cfg.TopicURL),
		)

		mailer, err = NewPubSubMailer(params.Ctx, cfg.TopicURL, fromAddress(cfg), logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the mailer on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Mailer")

			return mailer.Close()
		},
	})

	return mailer, nil
}

func fromAddress(cfg *config.MailConfig) string {
	if cfg == nil || cfg.FromAddress == "" {
		return "no-reply@roster.local"
	}

	return cfg.FromAddress
}

func welcomeMail(from, email, name string) service.Mail {
	return service.Mail{
		From:    from,
		To:      email,
		Subject: "Thanks for joining in!",
		Body:    fmt.Sprintf("Welcome to the app, %s. Let me know how you get along with the app.", name),
	}
}

func cancellationMail(from, email, name string) service.Mail {
	return service.Mail{
		From:    from,
		To:      email,
		Subject: "Sorry to see you go.",
		Body:    fmt.Sprintf("Thanks for using the app %s. I hope to see you back sometime soon.", name),
	}
}
