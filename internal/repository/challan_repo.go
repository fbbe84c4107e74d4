package repository

import (
	"errors"

	"go-challan-book/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a guarded update finds that the row
// was changed by another writer since it was read.
var ErrVersionConflict = errors.New("record was modified by another user, reload and try again")

type ChallanRepository interface {
	Create(challan *model.Challan) error
	FindAll() ([]model.Challan, error)
	FindAllByDate() ([]model.Challan, error)
	FindByID(id uuid.UUID) (*model.Challan, error)
	Update(challan *model.Challan, expectedVersion int) error
	Delete(id uuid.UUID) error
}

type challanRepo struct {
	db *gorm.DB
}

func NewChallanRepo(db *gorm.DB) ChallanRepository {
	return &challanRepo{db}
}

// Create assigns the next challan number and inserts the record in one
// transaction. The unique index on challan_number rejects the rare
// concurrent insert that picks the same number.
func (r *challanRepo) Create(challan *model.Challan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&model.Challan{}).
			Select("COALESCE(MAX(challan_number), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		challan.ChallanNumber = next
		challan.Version = 1
		return tx.Create(challan).Error
	})
}

// FindAll returns challans newest-number first (list view ordering)
func (r *challanRepo) FindAll() ([]model.Challan, error) {
	var challans []model.Challan
	err := r.db.Preload("Products").Order("challan_number DESC").Find(&challans).Error
	return challans, err
}

// FindAllByDate returns challans in descending date order (dashboard feed
// ordering; the aggregation engine relies on it for recent selection)
func (r *challanRepo) FindAllByDate() ([]model.Challan, error) {
	var challans []model.Challan
	err := r.db.Preload("Products").Order("date DESC, challan_number DESC").Find(&challans).Error
	return challans, err
}

func (r *challanRepo) FindByID(id uuid.UUID) (*model.Challan, error) {
	var challan model.Challan
	err := r.db.Preload("Products").First(&challan, "id = ?", id).Error
	return &challan, err
}

// Update overwrites the challan and replaces its line items, guarded by the
// version the caller read. A zero-row update means a concurrent writer won.
func (r *challanRepo) Update(challan *model.Challan, expectedVersion int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Challan{}).
			Where("id = ? AND version = ?", challan.ID, expectedVersion).
			Updates(map[string]interface{}{
				"date":           challan.Date,
				"total_amount":   challan.TotalAmount,
				"customer_name":  challan.CustomerName,
				"customer_phone": challan.CustomerPhone,
				"updated_by":     challan.UpdatedBy,
				"version":        gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		// Replace line items wholesale
		if err := tx.Where("challan_id = ?", challan.ID).
			Delete(&model.ChallanProduct{}).Error; err != nil {
			return err
		}
		for i := range challan.Products {
			challan.Products[i].ID = 0
			challan.Products[i].ChallanID = challan.ID
		}
		if err := tx.Create(&challan.Products).Error; err != nil {
			return err
		}

		challan.Version = expectedVersion + 1
		return nil
	})
}

// Delete removes the challan permanently. No soft-delete surface, matching
// the explicit-delete lifecycle of the records.
func (r *challanRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("challan_id = ?", id).
			Delete(&model.ChallanProduct{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Challan{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
