package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email is stored lowercased so the
// unique index enforces case-insensitive identity uniqueness. The avatar
// lives inline on the row, which makes account deletion atomic with respect
// to the blob.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Age          *int      `gorm:"check:age >= 0"`
	Avatar       []byte    `gorm:"type:bytea"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tokens []SessionTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SessionTokenModel mirrors the 'user_tokens' table, one row per issued,
// still-valid bearer token.
type SessionTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionTokenModel) TableName() string {
	return "user_tokens"
}
