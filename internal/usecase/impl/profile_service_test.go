package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngBytes is a minimal payload carrying the PNG magic number.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	mailer    *mockSvc.MockMailer
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Mailer:    mailer,
		Logger:    logger,
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		mailer:    mailer,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "adrian@example.com", Name: "Adrian"}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fixtures.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fixtures.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_NameAndAge(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	name := "Adrian Mejia"
	age := 30
	input := &usecase.UpdateProfileInput{Name: &name, Age: &age}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "adrian@example.com", Name: "Adrian"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Adrian Mejia", user.Name)
					require.NotNil(t, user.Age)
					assert.Equal(t, 30, *user.Age)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fixtures.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Adrian Mejia", updated.Name)
}

func TestProfileService_UpdateProfile_PasswordRehash(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	password := "NewPass999!"
	input := &usecase.UpdateProfileInput{Password: &password}

	fixtures.hasher.EXPECT().ValidatePassword(password).Return(nil)
	fixtures.hasher.EXPECT().Hash(password).Return("new_hash", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, PasswordHash: "old_hash"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new_hash", user.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fixtures.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new_hash", updated.PasswordHash)
}

func TestProfileService_UpdateProfile_NormalizesEmail(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	email := "New.Address@Example.COM"
	input := &usecase.UpdateProfileInput{Email: &email}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "old@example.com"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new.address@example.com", user.Email)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fixtures.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new.address@example.com", updated.Email)
}

func TestProfileService_UpdateProfile_MalformedEmail(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	email := "not-an-email"
	input := &usecase.UpdateProfileInput{Email: &email}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "old@example.com"}, nil)

			err := fn(mockFactory)
			mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

			return err
		})

	updated, err := fixtures.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_EmptyPatch(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()

	updated, err := fixtures.service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_DeleteAccount_Success(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	cancellationSent := make(chan struct{})

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "adrian@example.com", Name: "Adrian"}, nil)

			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fixtures.mailer.EXPECT().
		SendCancellation(mock.Anything, "adrian@example.com", "Adrian").
		Run(func(ctx context.Context, email string, name string) {
			close(cancellationSent)
		}).
		Return(nil)

	err := fixtures.service.DeleteAccount(ctx, userID)

	require.NoError(t, err)

	select {
	case <-cancellationSent:
	case <-time.After(time.Second):
		t.Fatal("cancellation mail was not dispatched")
	}
}

func TestProfileService_DeleteAccount_SucceedsWhenCancellationMailFails(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	cancellationAttempted := make(chan struct{})

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "adrian@example.com", Name: "Adrian"}, nil)

			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fixtures.mailer.EXPECT().
		SendCancellation(mock.Anything, "adrian@example.com", "Adrian").
		Run(func(ctx context.Context, email string, name string) {
			close(cancellationAttempted)
		}).
		Return(errors.New("smtp connection refused"))

	err := fixtures.service.DeleteAccount(ctx, userID)

	require.NoError(t, err)

	select {
	case <-cancellationAttempted:
	case <-time.After(time.Second):
		t.Fatal("cancellation mail was not dispatched")
	}
}

func TestProfileService_DeleteAccount_NotFound(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound)

	err := fixtures.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_SetAvatar_Success(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().SetAvatar(ctx, userID, pngBytes).Return(nil)

	err := fixtures.service.SetAvatar(ctx, userID, pngBytes)

	require.NoError(t, err)
}

func TestProfileService_SetAvatar_TooLarge(t *testing.T) {
	fixtures := createTestProfileService(t)

	oversized := make([]byte, maxAvatarBytes+1)
	copy(oversized, pngBytes)

	err := fixtures.service.SetAvatar(context.Background(), uuid.New(), oversized)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAvatarInvalid)
}

func TestProfileService_SetAvatar_UnsupportedType(t *testing.T) {
	fixtures := createTestProfileService(t)

	err := fixtures.service.SetAvatar(context.Background(), uuid.New(), []byte("plain text, not an image"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAvatarInvalid)
}

func TestProfileService_SetAvatar_Empty(t *testing.T) {
	fixtures := createTestProfileService(t)

	err := fixtures.service.SetAvatar(context.Background(), uuid.New(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAvatarInvalid)
}

func TestProfileService_GetAvatar_Success(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Avatar: bytes.Clone(pngBytes)}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	avatar, err := fixtures.service.GetAvatar(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, avatar)
}

func TestProfileService_GetAvatar_NotSet(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	avatar, err := fixtures.service.GetAvatar(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, avatar)
	assert.ErrorIs(t, err, domainerrors.ErrAvatarNotFound)
}

func TestProfileService_RemoveAvatar(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().RemoveAvatar(ctx, userID).Return(nil)

	err := fixtures.service.RemoveAvatar(ctx, userID)

	require.NoError(t, err)
}
