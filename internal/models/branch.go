package models

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a physical store location and the tenant-isolation boundary for
// customer data.
type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchCounter is the running document-number counter attached to a branch.
// A branch is never created without one; ticket numbering consumes it.
type BranchCounter struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BranchID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"branch_id"`
	LastNumber int64     `gorm:"not null" json:"last_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
