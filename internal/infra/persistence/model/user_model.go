package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Username and email are each unique.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(256);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(256);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Salt         string    `gorm:"type:varchar(64);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
