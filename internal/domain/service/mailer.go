package service

import "context"

// Mail is the transactional message handed to a Mailer provider.
type Mail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer delivers transactional email through an external collaborator.
// Callers dispatch sends on a detached context and never consume a result:
// delivery failures are logged by the provider and must not propagate into
// the operation that triggered them.
type Mailer interface {
	// SendWelcome sends the post-signup greeting.
	SendWelcome(ctx context.Context, email, name string) error

	// SendCancellation sends the account-deletion farewell.
	SendCancellation(ctx context.Context, email, name string) error

	// Close releases provider resources on shutdown.
	Close() error
}
