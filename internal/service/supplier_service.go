package service

import (
	"errors"
	"strings"

	"go-challan-book/internal/model"
	"go-challan-book/internal/repository"
	"go-challan-book/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
)

type SupplierService interface {
	Create(req *SupplierRequest, userID uuid.UUID) (*model.Supplier, error)
	Update(id uuid.UUID, req *SupplierRequest, userID uuid.UUID) (*model.Supplier, error)
	GetAll() ([]model.Supplier, error)
	Delete(id uuid.UUID) error
}

type SupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GST     string `json:"gst"`
	Version int    `json:"version"` // required on update
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func validateSupplier(req *SupplierRequest) []string {
	var messages []string

	if strings.TrimSpace(req.Name) == "" {
		messages = append(messages, "Supplier name is required")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		messages = append(messages, "Phone number is required")
	} else if !validator.IsPhone(phone) {
		messages = append(messages, "Invalid phone number format")
	}

	if strings.TrimSpace(req.Address) == "" {
		messages = append(messages, "Address is required")
	}

	if gst := strings.TrimSpace(req.GST); gst != "" && !validator.IsGSTIN(gst) {
		messages = append(messages, "GST number must be 15 characters")
	}

	return messages
}

func (s *supplierService) Create(req *SupplierRequest, userID uuid.UUID) (*model.Supplier, error) {
	if err := newValidationError(validateSupplier(req)); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		GST:     strings.TrimSpace(req.GST),
	}
	supplier.CreatedBy = userID.String()
	supplier.UpdatedBy = userID.String()

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req *SupplierRequest, userID uuid.UUID) (*model.Supplier, error) {
	if err := newValidationError(validateSupplier(req)); err != nil {
		return nil, err
	}

	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Address = strings.TrimSpace(req.Address)
	existing.GST = strings.TrimSpace(req.GST)
	existing.UpdatedBy = userID.String()

	if err := s.supplierRepo.Update(existing, req.Version); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *supplierService) GetAll() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) Delete(id uuid.UUID) error {
	if err := s.supplierRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return nil
}
