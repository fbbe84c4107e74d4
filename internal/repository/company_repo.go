package repository

import (
	"go-challan-book/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindByUserID(userID uuid.UUID) (*model.Company, error)
	Create(company *model.Company) error
	Update(company *model.Company, expectedVersion int) error
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db}
}

func (r *companyRepo) FindByUserID(userID uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "user_id = ?", userID).Error
	return &company, err
}

func (r *companyRepo) Create(company *model.Company) error {
	company.Version = 1
	return r.db.Create(company).Error
}

func (r *companyRepo) Update(company *model.Company, expectedVersion int) error {
	res := r.db.Model(&model.Company{}).
		Where("id = ? AND version = ?", company.ID, expectedVersion).
		Updates(map[string]interface{}{
			"name":       company.Name,
			"address":    company.Address,
			"phone":      company.Phone,
			"email":      company.Email,
			"gst":        company.GST,
			"logo":       company.Logo,
			"updated_by": company.UpdatedBy,
			"version":    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	company.Version = expectedVersion + 1
	return nil
}
