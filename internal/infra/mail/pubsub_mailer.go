package mail

import (
	"context"
	"encoding/json"
	"log/slog"

	"roster/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // in-memory topics for development
)

// pubsubMailer publishes mail events to a gocloud.dev topic; a downstream
// worker owns actual SMTP delivery. The topic URL selects the backend
// (mem://mail in development, a broker URL in production).
type pubsubMailer struct {
	topic  *pubsub.Topic
	from   string
	logger *slog.Logger
}

// NewPubSubMailer opens the configured topic and returns a mailer that
// publishes mail events to it.
func NewPubSubMailer(ctx context.Context, topicURL, from string, logger *slog.Logger) (service.Mailer, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open mail topic %s", topicURL)
	}

	return &pubsubMailer{
		topic:  topic,
		from:   from,
		logger: logger,
	}, nil
}

// SendWelcome publishes the post-signup greeting.
func (m *pubsubMailer) SendWelcome(ctx context.Context, email, name string) error {
	return m.publish(ctx, "welcome", welcomeMail(m.from, email, name))
}

// SendCancellation publishes the account-deletion farewell.
func (m *pubsubMailer) SendCancellation(ctx context.Context, email, name string) error {
	return m.publish(ctx, "cancellation", cancellationMail(m.from, email, name))
}

func (m *pubsubMailer) publish(ctx context.Context, kind string, mail service.Mail) error {
	body, err := json.Marshal(mail)
	if err != nil {
		return errors.WithStack(err)
	}

	m.logger.Info("[PubSubMailer] Publishing mail event",
		slog.String("kind", kind),
		slog.String("subject", mail.Subject),
	)

	err = m.topic.Send(ctx, &pubsub.Message{
		Body: body,
		Metadata: map[string]string{
			"kind": kind,
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish mail event")
	}

	return nil
}

// Close shuts down the underlying topic.
func (m *pubsubMailer) Close() error {
	return m.topic.Shutdown(context.Background())
}
