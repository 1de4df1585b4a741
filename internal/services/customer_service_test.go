package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/evobikemx/pos-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerColumns() []string {
	return []string{"id", "branch_id", "name", "phone", "email", "address", "notes", "created_at", "updated_at"}
}

func TestCustomerList_ScopedToBranch(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	branchID := uuid.New()
	c2 := uuid.New()
	c1 := uuid.New()
	now := time.Now()

	// Newest first, capped, and filtered by the caller's branch only.
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE branch_id = \$1 ORDER BY created_at DESC LIMIT`).
		WithArgs(branchID, MaxListResults).
		WillReturnRows(sqlmock.NewRows(customerColumns()).
			AddRow(c2, branchID, "Carla Díaz", nil, nil, nil, nil, now, now).
			AddRow(c1, branchID, "Ana López", nil, nil, nil, nil, now.Add(-24*time.Hour), now.Add(-24*time.Hour)))

	customers, err := s.List(branchID, "   ")
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, c2, customers[0].ID)
	assert.Equal(t, c1, customers[1].ID)
	expectationsMet(t, mock)
}

func TestCustomerList_SearchFiltersNameEmailPhone(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	branchID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE .*name ILIKE \$\d OR email ILIKE \$\d OR phone LIKE \$\d`).
		WillReturnRows(sqlmock.NewRows(customerColumns()))

	customers, err := s.List(branchID, "ana")
	require.NoError(t, err)
	assert.Empty(t, customers)
	expectationsMet(t, mock)
}

func TestCustomerCreate_RequiresName(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(uuid.New(), &dto.CustomerRequest{Name: name, Phone: "123"})
		assert.ErrorIs(t, err, ErrNameRequired)
	}

	// Validation failures never reach the store.
	expectationsMet(t, mock)
}

func TestCustomerCreate_NormalizesFields(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	branchID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	customer, err := s.Create(branchID, &dto.CustomerRequest{
		Name:    "  Ana López  ",
		Phone:   " 998-123-4567 ",
		Email:   "  Ana.Lopez@Example.MX ",
		Address: "   ",
		Notes:   "",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana López", customer.Name)
	assert.Equal(t, branchID, customer.BranchID)
	require.NotNil(t, customer.Phone)
	assert.Equal(t, "998-123-4567", *customer.Phone)
	require.NotNil(t, customer.Email)
	assert.Equal(t, "ana.lopez@example.mx", *customer.Email)
	assert.Nil(t, customer.Address)
	assert.Nil(t, customer.Notes)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	expectationsMet(t, mock)
}

func TestCustomerUpdate_RequiresName(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	_, err := s.Update(uuid.New(), uuid.New(), &dto.CustomerRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)
	expectationsMet(t, mock)
}

func TestCustomerUpdate_NotFoundForForeignBranch(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	// The lookup carries branch_id in the same predicate as the id, so a
	// guessed id from another branch resolves to nothing.
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE .*branch_id = \$\d`).
		WillReturnRows(sqlmock.NewRows(customerColumns()))

	_, err := s.Update(uuid.New(), uuid.New(), &dto.CustomerRequest{Name: "Ana"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	expectationsMet(t, mock)
}

func TestCustomerUpdate_AppliesNormalizedMutation(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	branchID := uuid.New()
	customerID := uuid.New()
	created := time.Now().Add(-48 * time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE .*branch_id = \$\d`).
		WillReturnRows(sqlmock.NewRows(customerColumns()).
			AddRow(customerID, branchID, "Ana", nil, nil, nil, nil, created, created))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	customer, err := s.Update(branchID, customerID, &dto.CustomerRequest{
		Name:  " Ana María ",
		Email: " ANA@EXAMPLE.MX ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", customer.Name)
	require.NotNil(t, customer.Email)
	assert.Equal(t, "ana@example.mx", *customer.Email)
	assert.Nil(t, customer.Phone)
	assert.Equal(t, branchID, customer.BranchID)
	expectationsMet(t, mock)
}

func TestCustomerDelete_NotFoundForForeignBranch(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	branchID := uuid.New()
	customerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1 AND branch_id = \$2`).
		WithArgs(customerID, branchID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.Delete(branchID, customerID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	expectationsMet(t, mock)
}

func TestCustomerDelete_RemovesOwnedRecord(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewCustomerService(db)

	branchID := uuid.New()
	customerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1 AND branch_id = \$2`).
		WithArgs(customerID, branchID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Delete(branchID, customerID))
	expectationsMet(t, mock)
}
