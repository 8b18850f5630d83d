package impl

import (
	"context"
	"log/slog"
	"time"
)

// mailDispatchTimeout bounds a detached mail send so an unreachable provider
// cannot leak goroutines forever.
const mailDispatchTimeout = 30 * time.Second

// dispatchMail runs a mail send detached from the request: no result is
// awaited and failures only reach the log. The send outlives the request
// context but not the timeout.
func dispatchMail(ctx context.Context, logger *slog.Logger, kind, email string, send func(context.Context) error) {
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailDispatchTimeout)

	go func() {
		defer cancel()

		if err := send(mailCtx); err != nil {
			logger.Warn("Mail dispatch failed",
				slog.String("kind", kind),
				slog.String("email", email),
				slog.Any("error", err),
			)
		}
	}()
}
