package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-challan-book/internal/model"
	"go-challan-book/internal/repository"
	"go-challan-book/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrChallanNotFound = errors.New("challan not found")
)

type ChallanService interface {
	Create(req *ChallanRequest, userID uuid.UUID) (*model.Challan, error)
	Update(id uuid.UUID, req *ChallanRequest, userID uuid.UUID) (*model.Challan, error)
	GetAll() ([]model.Challan, error)
	GetByID(id uuid.UUID) (*model.Challan, error)
	Delete(id uuid.UUID) error
}

// ProductInput is one submitted line item. Total is accepted for wire
// compatibility but always recomputed server-side.
type ProductInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// ChallanRequest is the create/update submission. ChallanNumber is never
// accepted from the caller: it is assigned by the store on create and
// immutable afterwards. TotalAmount is likewise recomputed.
type ChallanRequest struct {
	Date          string         `json:"date"` // YYYY-MM-DD
	Products      []ProductInput `json:"products"`
	TotalAmount   float64        `json:"total_amount"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	Version       int            `json:"version"` // required on update
}

type challanService struct {
	challanRepo repository.ChallanRepository
}

func NewChallanService(challanRepo repository.ChallanRepository) ChallanService {
	return &challanService{challanRepo: challanRepo}
}

// validateChallan collects every violated rule, it does not stop at the
// first failure.
func validateChallan(req *ChallanRequest) ([]string, time.Time) {
	var messages []string
	var date time.Time

	if strings.TrimSpace(req.Date) == "" {
		messages = append(messages, "Date is required")
	} else {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
		if err != nil {
			messages = append(messages, "Invalid date format, use YYYY-MM-DD")
		} else {
			date = parsed
		}
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		messages = append(messages, "Customer name is required")
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		messages = append(messages, "Customer phone is required")
	} else if !validator.IsPhone(phone) {
		messages = append(messages, "Invalid phone number format")
	}

	if len(req.Products) == 0 {
		messages = append(messages, "At least one product is required")
	}

	for i, product := range req.Products {
		label := strings.TrimSpace(product.Name)
		if label == "" {
			label = fmt.Sprintf("item %d", i+1)
		}
		if strings.TrimSpace(product.Name) == "" {
			messages = append(messages, fmt.Sprintf("Product name is required for item %d", i+1))
		}
		if product.Quantity <= 0 {
			messages = append(messages, fmt.Sprintf("Invalid quantity for %s", label))
		}
		if product.Price <= 0 {
			messages = append(messages, fmt.Sprintf("Invalid price for %s", label))
		}
	}

	return messages, date
}

// buildProducts recomputes each line total and the challan total from
// quantity and price. Caller-supplied totals are ignored so the stored
// redundant fields can never drift.
func buildProducts(inputs []ProductInput) ([]model.ChallanProduct, float64) {
	products := make([]model.ChallanProduct, len(inputs))
	var totalAmount float64
	for i, input := range inputs {
		total := input.Quantity * input.Price
		products[i] = model.ChallanProduct{
			Name:     strings.TrimSpace(input.Name),
			Quantity: input.Quantity,
			Price:    input.Price,
			Total:    total,
		}
		totalAmount += total
	}
	return products, totalAmount
}

func (s *challanService) Create(req *ChallanRequest, userID uuid.UUID) (*model.Challan, error) {
	messages, date := validateChallan(req)
	if err := newValidationError(messages); err != nil {
		return nil, err
	}

	products, totalAmount := buildProducts(req.Products)

	challan := &model.Challan{
		UserID:        userID,
		Date:          date,
		Products:      products,
		TotalAmount:   totalAmount,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
	}
	challan.CreatedBy = userID.String()
	challan.UpdatedBy = userID.String()

	if err := s.challanRepo.Create(challan); err != nil {
		return nil, err
	}
	return challan, nil
}

func (s *challanService) Update(id uuid.UUID, req *ChallanRequest, userID uuid.UUID) (*model.Challan, error) {
	messages, date := validateChallan(req)
	if err := newValidationError(messages); err != nil {
		return nil, err
	}

	existing, err := s.challanRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallanNotFound
		}
		return nil, err
	}

	products, totalAmount := buildProducts(req.Products)

	existing.Date = date
	existing.Products = products
	existing.TotalAmount = totalAmount
	existing.CustomerName = strings.TrimSpace(req.CustomerName)
	existing.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	existing.UpdatedBy = userID.String()

	if err := s.challanRepo.Update(existing, req.Version); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *challanService) GetAll() ([]model.Challan, error) {
	return s.challanRepo.FindAll()
}

func (s *challanService) GetByID(id uuid.UUID) (*model.Challan, error) {
	challan, err := s.challanRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallanNotFound
		}
		return nil, err
	}
	return challan, nil
}

func (s *challanService) Delete(id uuid.UUID) error {
	if err := s.challanRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChallanNotFound
		}
		return err
	}
	return nil
}
