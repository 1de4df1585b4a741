package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBranchFieldsRequired = errors.New("branch code and name are required")
	ErrBranchCodeTaken      = errors.New("branch code already in use")
)

type BranchService struct {
	db *gorm.DB
}

func NewBranchService(db *gorm.DB) *BranchService {
	return &BranchService{db: db}
}

// Create persists a branch together with its document counter in one
// transaction. A branch without a counter must never exist; ticket numbering
// depends on it.
func (s *BranchService) Create(code, name string) (*models.Branch, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if code == "" || name == "" {
		return nil, ErrBranchFieldsRequired
	}

	var existing models.Branch
	if err := s.db.Where("code = ?", code).First(&existing).Error; err == nil {
		return nil, ErrBranchCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up branch: %w", err)
	}

	branch := models.Branch{
		ID:   uuid.New(),
		Code: code,
		Name: name,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&branch).Error; err != nil {
			return err
		}
		counter := models.BranchCounter{
			ID:       uuid.New(),
			BranchID: branch.ID,
		}
		return tx.Create(&counter).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	return &branch, nil
}

func (s *BranchService) List() ([]models.Branch, error) {
	var branches []models.Branch
	if err := s.db.Order("code").Find(&branches).Error; err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}
