package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evobikemx/pos-backend/internal/branch"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/evobikemx/pos-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxListResults is a hard ceiling on list size, not a page size. Anything
// beyond it is the client's problem.
const MaxListResults = 100

var (
	ErrNameRequired     = errors.New("name is required")
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerService owns the customer directory. Every operation takes the
// caller's branch as a mandatory filter; there is no unscoped code path.
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns the branch's customers, newest first, capped at
// MaxListResults. A trimmed non-empty query filters by case-insensitive
// substring on name and email, plain substring on phone.
func (s *CustomerService) List(branchID uuid.UUID, query string) ([]models.Customer, error) {
	tx := s.db.Scopes(branch.Scoped(branchID))

	if q := strings.TrimSpace(query); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR phone LIKE ?", like, like, like)
	}

	var customers []models.Customer
	if err := tx.Order("created_at DESC").Limit(MaxListResults).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Create validates and normalizes the payload, then persists the customer
// under the caller's branch.
func (s *CustomerService) Create(branchID uuid.UUID, req *dto.CustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	customer := models.Customer{
		ID:       uuid.New(),
		BranchID: branchID,
		Name:     name,
		Phone:    optional(req.Phone),
		Email:    optionalEmail(req.Email),
		Address:  optional(req.Address),
		Notes:    optional(req.Notes),
	}

	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// Update applies create-identical validation, then mutates the record. The
// existence and ownership check is a single predicate (id AND branch_id) so a
// concurrent reassignment cannot open a window between two lookups. A missing
// record and a record owned by another branch are indistinguishable to the
// caller.
func (s *CustomerService) Update(branchID, customerID uuid.UUID, req *dto.CustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var customer models.Customer
	if err := s.db.Scopes(branch.Scoped(branchID)).First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	customer.Name = name
	customer.Phone = optional(req.Phone)
	customer.Email = optionalEmail(req.Email)
	customer.Address = optional(req.Address)
	customer.Notes = optional(req.Notes)

	if err := s.db.Save(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return &customer, nil
}

// Delete removes the customer in a single scoped DELETE; zero rows affected
// means not found or not owned, reported identically.
func (s *CustomerService) Delete(branchID, customerID uuid.UUID) error {
	result := s.db.Where("id = ? AND branch_id = ?", customerID, branchID).Delete(&models.Customer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// optional trims free text and maps empty input to NULL.
func optional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// optionalEmail additionally lowercases, matching the user email convention.
func optionalEmail(s string) *string {
	t := NormalizeEmail(s)
	if t == "" {
		return nil
	}
	return &t
}
