// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// tokenRepository implements the domain.TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Append records a newly issued token hash for the user.
func (repo *tokenRepository) Append(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	tokenM := &model.SessionTokenModel{
		UserID:    userID,
		TokenHash: tokenHash,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append session token")
	}

	return nil
}

// Exists reports whether the token hash is currently in the user's set.
// The lookup is pinned to the primary so a token revoked an instant ago is
// never resurrected by a stale replica read.
func (repo *tokenRepository) Exists(ctx context.Context, userID uuid.UUID, tokenHash string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.SessionTokenModel{}).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up session token")
	}

	return count > 0, nil
}

// Remove deletes exactly this token hash from the user's set.
// Removing an absent hash is a no-op, which makes logout idempotent.
func (repo *tokenRepository) Remove(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		Delete(&model.SessionTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove session token")
	}

	return nil
}

// RemoveAll empties the user's token set.
func (repo *tokenRepository) RemoveAll(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SessionTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear session tokens")
	}

	return nil
}
