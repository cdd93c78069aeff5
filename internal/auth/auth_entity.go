package auth

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken persists issued refresh tokens so they can be rotated on use
// and revoked on logout.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Token     string    `gorm:"column:token;type:varchar(512);not null;uniqueIndex:uq_refresh_token"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
