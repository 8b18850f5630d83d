// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenRepo    repository.TokenRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenRepo    repository.TokenRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenRepo:    params.TokenRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the token signature and checks membership against the
// stored session set. The set is read live on every call, so a revoked token
// is rejected on the very next request.
func (srv *sessionService) Authenticate(ctx context.Context, rawToken string) (uuid.UUID, error) {
	claims, err := srv.tokenService.Parse(rawToken)
	if err != nil {
		srv.log(ctx).Debug("Token parse failed", slog.Any("error", err))

		return uuid.Nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token parse failed")
	}

	exists, err := srv.tokenRepo.Exists(ctx, claims.UserID, srv.tokenService.HashToken(rawToken))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to check session token")
	}
	if !exists {
		srv.log(ctx).Debug("Token not in session set", slog.Any("userID", claims.UserID))

		return uuid.Nil, errors.Wrap(domainerrors.ErrTokenInvalid, "session revoked")
	}

	return claims.UserID, nil
}

// Logout revokes exactly the presented token. Other sessions stay valid.
func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID, rawToken string) error {
	srv.log(ctx).Info("Logging out session", slog.Any("userID", userID))

	if err := srv.tokenRepo.Remove(ctx, userID, srv.tokenService.HashToken(rawToken)); err != nil {
		return errors.Wrap(err, "failed to remove session token")
	}

	return nil
}

// LogoutAll revokes every session of the user.
func (srv *sessionService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out all sessions", slog.Any("userID", userID))

	if err := srv.tokenRepo.RemoveAll(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to remove session tokens")
	}

	return nil
}
