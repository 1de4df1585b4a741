package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is a back-office staff account. BranchID is nil for accounts that are
// not assigned to a branch; those accounts can log in but cannot touch
// customer data.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:'STAFF'" json:"role"`
	BranchID     *uuid.UUID `gorm:"type:uuid;index" json:"branch_id"`
	Branch       *Branch    `gorm:"foreignKey:BranchID" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
