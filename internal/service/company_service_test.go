package service

import (
	"testing"

	"go-challan-book/internal/model"
	"go-challan-book/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCompanyRepo struct {
	companies map[uuid.UUID]model.Company // keyed by user id
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]model.Company)}
}

func (r *fakeCompanyRepo) FindByUserID(userID uuid.UUID) (*model.Company, error) {
	c, ok := r.companies[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeCompanyRepo) Create(company *model.Company) error {
	company.ID = uuid.New()
	company.Version = 1
	r.companies[company.UserID] = *company
	return nil
}

func (r *fakeCompanyRepo) Update(company *model.Company, expectedVersion int) error {
	existing, ok := r.companies[company.UserID]
	if !ok || existing.Version != expectedVersion {
		return repository.ErrVersionConflict
	}
	company.Version = expectedVersion + 1
	r.companies[company.UserID] = *company
	return nil
}

func validCompanyRequest() *CompanyRequest {
	return &CompanyRequest{
		Name:    "Patel Hardware",
		Address: "2 Industrial Estate",
		Phone:   "9876543210",
		Email:   "office@patelhardware.in",
	}
}

func TestCompanySaveCreatesThenOverwrites(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	userID := uuid.New()

	// First save creates the singleton profile
	created, err := svc.Save(validCompanyRequest(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, userID, created.UserID)

	// Second save overwrites it
	update := validCompanyRequest()
	update.Name = "Patel Hardware & Sons"
	update.Version = created.Version
	saved, err := svc.Save(update, userID)
	require.NoError(t, err)
	assert.Equal(t, "Patel Hardware & Sons", saved.Name)
	assert.Equal(t, 2, saved.Version)

	// Still a single record per account
	got, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCompanySaveVersionConflict(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	userID := uuid.New()

	created, err := svc.Save(validCompanyRequest(), userID)
	require.NoError(t, err)

	first := validCompanyRequest()
	first.Version = created.Version
	_, err = svc.Save(first, userID)
	require.NoError(t, err)

	stale := validCompanyRequest()
	stale.Version = created.Version
	_, err = svc.Save(stale, userID)
	assert.ErrorIs(t, err, repository.ErrVersionConflict)
}

func TestCompanySaveCollectsAllViolations(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())

	req := &CompanyRequest{Name: "", Address: "", Phone: "12", Email: "nope", GST: "x"}
	_, err := svc.Save(req, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "Company name is required")
	assert.Contains(t, validationErr.Messages, "Address is required")
	assert.Contains(t, validationErr.Messages, "Invalid phone number format")
	assert.Contains(t, validationErr.Messages, "Invalid email format")
	assert.Contains(t, validationErr.Messages, "GST number must be 15 characters")
}

func TestCompanyGetMissing(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())
	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
