package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a contact record owned by exactly one branch. Optional fields
// are pointers so empty input is stored as NULL rather than "".
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     *string   `gorm:"size:50" json:"phone"`
	Email     *string   `gorm:"size:255" json:"email"`
	Address   *string   `gorm:"type:text" json:"address"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
