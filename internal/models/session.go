package models

import (
	"time"

	"github.com/google/uuid"
)

// Session maps an opaque client-held token to a user. Only the sha256 of the
// token is stored; the raw value lives exclusively in the client cookie.
type Session struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash  string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
