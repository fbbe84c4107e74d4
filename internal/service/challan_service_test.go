package service

import (
	"sort"
	"testing"

	"go-challan-book/internal/model"
	"go-challan-book/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeChallanRepo is an in-memory ChallanRepository with the same numbering
// and version-guard semantics as the gorm implementation.
type fakeChallanRepo struct {
	challans map[uuid.UUID]model.Challan
}

func newFakeChallanRepo() *fakeChallanRepo {
	return &fakeChallanRepo{challans: make(map[uuid.UUID]model.Challan)}
}

func (r *fakeChallanRepo) Create(challan *model.Challan) error {
	next := 1
	for _, c := range r.challans {
		if c.ChallanNumber >= next {
			next = c.ChallanNumber + 1
		}
	}
	challan.ID = uuid.New()
	challan.ChallanNumber = next
	challan.Version = 1
	r.challans[challan.ID] = *challan
	return nil
}

func (r *fakeChallanRepo) FindAll() ([]model.Challan, error) {
	out := make([]model.Challan, 0, len(r.challans))
	for _, c := range r.challans {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChallanNumber > out[j].ChallanNumber })
	return out, nil
}

func (r *fakeChallanRepo) FindAllByDate() ([]model.Challan, error) {
	out, _ := r.FindAll()
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeChallanRepo) FindByID(id uuid.UUID) (*model.Challan, error) {
	c, ok := r.challans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeChallanRepo) Update(challan *model.Challan, expectedVersion int) error {
	existing, ok := r.challans[challan.ID]
	if !ok || existing.Version != expectedVersion {
		return repository.ErrVersionConflict
	}
	challan.Version = expectedVersion + 1
	r.challans[challan.ID] = *challan
	return nil
}

func (r *fakeChallanRepo) Delete(id uuid.UUID) error {
	if _, ok := r.challans[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.challans, id)
	return nil
}

func validChallanRequest() *ChallanRequest {
	return &ChallanRequest{
		Date:          "2024-01-10",
		CustomerName:  "Acme Traders",
		CustomerPhone: "9876543210",
		Products: []ProductInput{
			{Name: "Cement Bag", Quantity: 10, Price: 350, Total: 9999}, // bogus total, must be ignored
			{Name: "Steel Rod", Quantity: 4, Price: 120},
		},
		TotalAmount: 1, // bogus, must be ignored
	}
}

func TestCreateChallanRecomputesTotals(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo())

	challan, err := svc.Create(validChallanRequest(), uuid.New())
	require.NoError(t, err)

	require.Len(t, challan.Products, 2)
	assert.Equal(t, 3500.0, challan.Products[0].Total)
	assert.Equal(t, 480.0, challan.Products[1].Total)
	assert.Equal(t, 3980.0, challan.TotalAmount)
}

func TestCreateChallanAssignsSequentialNumbers(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo())
	userID := uuid.New()

	first, err := svc.Create(validChallanRequest(), userID)
	require.NoError(t, err)
	second, err := svc.Create(validChallanRequest(), userID)
	require.NoError(t, err)

	assert.Equal(t, 1, first.ChallanNumber)
	assert.Equal(t, 2, second.ChallanNumber)
	assert.Equal(t, 1, second.Version)
}

func TestCreateChallanCollectsAllViolations(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo())

	req := &ChallanRequest{
		Date:          "2024-01-10",
		CustomerName:  "   ",
		CustomerPhone: "12345",
		Products:      nil,
	}
	_, err := svc.Create(req, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "Customer name is required")
	assert.Contains(t, validationErr.Messages, "Invalid phone number format")
	assert.Contains(t, validationErr.Messages, "At least one product is required")
	assert.Len(t, validationErr.Messages, 3)
}

func TestCreateChallanProductLineViolations(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo())

	req := validChallanRequest()
	req.Products = []ProductInput{
		{Name: "", Quantity: 0, Price: -1},
		{Name: "Bricks", Quantity: 100, Price: 8},
	}
	_, err := svc.Create(req, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "Product name is required for item 1")
	assert.Contains(t, validationErr.Messages, "Invalid quantity for item 1")
	assert.Contains(t, validationErr.Messages, "Invalid price for item 1")
	assert.Len(t, validationErr.Messages, 3)
}

func TestUpdateChallanVersionConflict(t *testing.T) {
	repo := newFakeChallanRepo()
	svc := NewChallanService(repo)
	userID := uuid.New()

	created, err := svc.Create(validChallanRequest(), userID)
	require.NoError(t, err)

	// First writer wins
	req := validChallanRequest()
	req.Version = created.Version
	_, err = svc.Update(created.ID, req, userID)
	require.NoError(t, err)

	// Second writer carries the stale version and must fail fast
	stale := validChallanRequest()
	stale.Version = created.Version
	_, err = svc.Update(created.ID, stale, userID)
	assert.ErrorIs(t, err, repository.ErrVersionConflict)
}

func TestUpdateChallanNotFound(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo())

	req := validChallanRequest()
	_, err := svc.Update(uuid.New(), req, uuid.New())
	assert.ErrorIs(t, err, ErrChallanNotFound)
}

func TestDeleteChallan(t *testing.T) {
	repo := newFakeChallanRepo()
	svc := NewChallanService(repo)

	created, err := svc.Create(validChallanRequest(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.ErrorIs(t, svc.Delete(created.ID), ErrChallanNotFound)
}
