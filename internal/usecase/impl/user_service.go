// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.TokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete account creation process.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name must not be blank")
	}
	if input.Age != nil && *input.Age < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "age must not be negative")
	}

	// Password policy and hashing happen outside the transaction (bcrypt is CPU-bound).
	if err := srv.hasher.ValidatePassword(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Age:          input.Age,
	}

	var token string

	// Creating the account and recording its first token are one atomic step.
	// Duplicate identities are resolved by the store's unique constraint, so a
	// concurrent signup race leaves exactly one winner.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		signed, err := srv.tokenService.Sign(newUser.ID)
		if err != nil {
			return errors.Wrap(err, "failed to sign token during signup")
		}

		if err := repoFactory.TokenRepo().Append(ctx, newUser.ID, srv.tokenService.HashToken(signed)); err != nil {
			return errors.Wrap(err, "failed to store token during signup")
		}

		token = signed

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Welcome mail is fire-and-forget: its failure must never fail the signup response.
	dispatchMail(ctx, srv.log(ctx), "welcome", newUser.Email, func(mailCtx context.Context) error {
		return srv.mailer.SendWelcome(mailCtx, newUser.Email, newUser.Name)
	})

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := NormalizeEmail(input.Email)

	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		// Unknown identity and wrong password collapse into the same error so
		// a caller cannot learn which half of the credentials was wrong.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Sign(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token during login")
	}

	if err := srv.tokenRepo.Append(ctx, user.ID, srv.tokenService.HashToken(token)); err != nil {
		return nil, errors.Wrap(err, "failed to store token during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// NormalizeEmail lowercases and trims an identity so equality and uniqueness
// are case-insensitive everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
