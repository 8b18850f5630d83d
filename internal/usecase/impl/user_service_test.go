package impl

import (
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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenRepo:    tokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Adrian",
		Email:    "Adrian@Example.com",
		Password: "MyPass777!",
	}

	userID := uuid.New()
	welcomeSent := make(chan struct{})

	fixtures.hasher.EXPECT().ValidatePassword(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fixtures.tokenService.EXPECT().Sign(userID).Return("signed-token", nil)
	fixtures.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			mockTokenRepo.EXPECT().Append(ctx, userID, "token-hash").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fixtures.mailer.EXPECT().
		SendWelcome(mock.Anything, "adrian@example.com", "Adrian").
		Run(func(ctx context.Context, email string, name string) {
			close(welcomeSent)
		}).
		Return(nil)

	output, err := fixtures.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "adrian@example.com", output.User.Email)
	assert.Equal(t, "Adrian", output.User.Name)
	assert.Equal(t, "signed-token", output.Token)

	select {
	case <-welcomeSent:
	case <-time.After(time.Second):
		t.Fatal("welcome mail was not dispatched")
	}
}

func TestUserService_Signup_SucceedsWhenWelcomeMailFails(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Adrian",
		Email:    "adrian@example.com",
		Password: "MyPass777!",
	}

	userID := uuid.New()
	welcomeAttempted := make(chan struct{})

	fixtures.hasher.EXPECT().ValidatePassword(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fixtures.tokenService.EXPECT().Sign(userID).Return("signed-token", nil)
	fixtures.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			mockTokenRepo.EXPECT().Append(ctx, userID, "token-hash").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fixtures.mailer.EXPECT().
		SendWelcome(mock.Anything, "adrian@example.com", "Adrian").
		Run(func(ctx context.Context, email string, name string) {
			close(welcomeAttempted)
		}).
		Return(errors.New("smtp connection refused"))

	output, err := fixtures.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)

	select {
	case <-welcomeAttempted:
	case <-time.After(time.Second):
		t.Fatal("welcome mail was not dispatched")
	}
}

func TestUserService_Signup_PasswordPolicyViolation(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Adrian",
		Email:    "adrian@example.com",
		Password: "short",
	}

	fixtures.hasher.EXPECT().
		ValidatePassword(input.Password).
		Return(domainerrors.ErrPasswordPolicy)

	output, err := fixtures.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordPolicy)
}

func TestUserService_Signup_BlankName(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "   ",
		Email:    "adrian@example.com",
		Password: "MyPass777!",
	}

	output, err := fixtures.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Signup_NegativeAge(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	age := -3
	input := &usecase.SignupInput{
		Name:     "Adrian",
		Email:    "adrian@example.com",
		Password: "MyPass777!",
		Age:      &age,
	}

	output, err := fixtures.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Adrian",
		Email:    "adrian@example.com",
		Password: "MyPass777!",
	}

	fixtures.hasher.EXPECT().ValidatePassword(input.Password).Return(nil)
	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrEmailTaken, "failed to create user during signup"))

	output, err := fixtures.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "EMAIL_TAKEN", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "adrian@example.com",
		Name:         "Adrian",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Email:    "Adrian@Example.com",
		Password: "MyPass777!",
	}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, "adrian@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fixtures.tokenService.EXPECT().Sign(userID).Return("fresh-token", nil)
	fixtures.tokenService.EXPECT().HashToken("fresh-token").Return("fresh-hash")
	fixtures.tokenRepo.EXPECT().Append(ctx, userID, "fresh-hash").Return(nil)

	output, err := fixtures.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "fresh-token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "MyPass777!",
	}

	fixtures.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fixtures.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "adrian@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Email:    "adrian@example.com",
		Password: "not-the-password",
	}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, "adrian@example.com").Return(user, nil)
	fixtures.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fixtures.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	// Unknown email and wrong password must be indistinguishable to callers.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "adrian@example.com", NormalizeEmail("  Adrian@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}
