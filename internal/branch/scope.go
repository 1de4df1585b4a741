package branch

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scoped returns a GORM scope that filters by branch_id. Every customer query
// goes through it; nothing in the repository reads customers unscoped.
func Scoped(branchID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("branch_id = ?", branchID)
	}
}
