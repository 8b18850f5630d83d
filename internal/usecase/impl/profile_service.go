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

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxAvatarBytes caps uploaded profile images at 1 MiB.
const maxAvatarBytes = 1 << 20

// patchValidator re-checks patch fields here because callers other than the
// HTTP layer construct UpdateProfileInput directly.
var patchValidator = validator.New(validator.WithRequiredStructEnabled())

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	mailer    service.Mailer
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Mailer    service.Mailer
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		mailer:    params.Mailer,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account for the given user ID.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the typed patch to the account. The read and write
// share one transaction so a concurrent delete cannot leave a half-applied
// record: once the delete commits, this update sees no row and fails.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	if input.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "update contains no fields")
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := srv.applyPatch(ctx, user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist profile update")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

func (srv *profileService) applyPatch(ctx context.Context, user *entity.User, input *usecase.UpdateProfileInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "name must not be blank")
		}
		user.Name = name
	}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		if err := patchValidator.Var(email, "required,email"); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "email is not a valid address")
		}
		user.Email = email
	}

	if input.Age != nil {
		if *input.Age < 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "age must not be negative")
		}
		user.Age = input.Age
	}

	if input.Password != nil {
		if err := srv.hasher.ValidatePassword(*input.Password); err != nil {
			return err
		}

		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hashed
	}

	return nil
}

// DeleteAccount removes the account. Tokens cascade and the avatar lives on
// the row, so the delete is atomic. The cancellation mail is best-effort.
func (srv *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	var deleted *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		deleted = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	dispatchMail(ctx, srv.log(ctx), "cancellation", deleted.Email, func(mailCtx context.Context) error {
		return srv.mailer.SendCancellation(mailCtx, deleted.Email, deleted.Name)
	})

	srv.log(ctx).Debug("Account deleted", slog.Any("userID", userID))

	return nil
}

// SetAvatar validates and stores the profile image.
func (srv *profileService) SetAvatar(ctx context.Context, userID uuid.UUID, avatar []byte) error {
	srv.log(ctx).Debug("Setting avatar", slog.Any("userID", userID), slog.Int("bytes", len(avatar)))

	if err := validateAvatar(avatar); err != nil {
		return err
	}

	if err := srv.userRepo.SetAvatar(ctx, userID, avatar); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to store avatar")
	}

	return nil
}

// RemoveAvatar clears the profile image.
func (srv *profileService) RemoveAvatar(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Debug("Removing avatar", slog.Any("userID", userID))

	if err := srv.userRepo.RemoveAvatar(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to remove avatar")
	}

	return nil
}

// GetAvatar returns the stored image bytes for any account.
func (srv *profileService) GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasAvatar() {
		return nil, errors.Wrap(domainerrors.ErrAvatarNotFound, "avatar not set")
	}

	return user.Avatar, nil
}

func validateAvatar(avatar []byte) error {
	if len(avatar) == 0 {
		return errors.Wrap(domainerrors.ErrAvatarInvalid, "avatar is empty")
	}
	if len(avatar) > maxAvatarBytes {
		return errors.Wrap(domainerrors.ErrAvatarInvalid, "avatar exceeds 1 MiB")
	}

	detected := mimetype.Detect(avatar)
	if !detected.Is("image/png") && !detected.Is("image/jpeg") {
		return errors.Wrapf(domainerrors.ErrAvatarInvalid, "unsupported content type %s", detected.String())
	}

	return nil
}
