package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	tokenRepo    *mockRepo.MockTokenRepository
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSessionService(SessionServiceParams{
		TokenRepo:    tokenRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return sessionServiceFixtures{
		service:      service,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
	}
}

func TestSessionService_Authenticate_Success(t *testing.T) {
	fixtures := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.tokenService.EXPECT().
		Parse("raw-token").
		Return(&service.Claims{UserID: userID, TokenID: uuid.New()}, nil)
	fixtures.tokenService.EXPECT().HashToken("raw-token").Return("raw-hash")
	fixtures.tokenRepo.EXPECT().Exists(ctx, userID, "raw-hash").Return(true, nil)

	got, err := fixtures.service.Authenticate(ctx, "raw-token")

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestSessionService_Authenticate_InvalidSignature(t *testing.T) {
	fixtures := createTestSessionService(t)

	ctx := context.Background()

	fixtures.tokenService.EXPECT().
		Parse("garbage").
		Return(nil, errors.New("signature is invalid"))

	got, err := fixtures.service.Authenticate(ctx, "garbage")

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Authenticate_RevokedToken(t *testing.T) {
	fixtures := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The token still parses, but it is no longer in the session set.
	fixtures.tokenService.EXPECT().
		Parse("revoked-token").
		Return(&service.Claims{UserID: userID}, nil)
	fixtures.tokenService.EXPECT().HashToken("revoked-token").Return("revoked-hash")
	fixtures.tokenRepo.EXPECT().Exists(ctx, userID, "revoked-hash").Return(false, nil)

	got, err := fixtures.service.Authenticate(ctx, "revoked-token")

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Logout_RemovesOnlyPresentedToken(t *testing.T) {
	fixtures := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.tokenService.EXPECT().HashToken("session-a").Return("hash-a")
	fixtures.tokenRepo.EXPECT().Remove(ctx, userID, "hash-a").Return(nil)

	err := fixtures.service.Logout(ctx, userID, "session-a")

	require.NoError(t, err)
	fixtures.tokenRepo.AssertNotCalled(t, "RemoveAll", ctx, userID)
}

func TestSessionService_LogoutAll(t *testing.T) {
	fixtures := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.tokenRepo.EXPECT().RemoveAll(ctx, userID).Return(nil)

	err := fixtures.service.LogoutAll(ctx, userID)

	require.NoError(t, err)
}
