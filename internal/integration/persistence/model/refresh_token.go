// Package model defines GORM database models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel represents an issued refresh token. The roster lives in
// the spreadsheet, so tokens key on the employee email rather than a user id.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:text;uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(255);index;not null"`
	Invalidated bool      `gorm:"not null;default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
