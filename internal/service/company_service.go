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
	ErrCompanyNotFound = errors.New("company details not found")
)

type CompanyService interface {
	Get(userID uuid.UUID) (*model.Company, error)
	Save(req *CompanyRequest, userID uuid.UUID) (*model.Company, error)
}

type CompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GST     string `json:"gst"`
	Logo    string `json:"logo"`
	Version int    `json:"version"` // required once the profile exists
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func validateCompany(req *CompanyRequest) []string {
	var messages []string

	if strings.TrimSpace(req.Name) == "" {
		messages = append(messages, "Company name is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		messages = append(messages, "Address is required")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		messages = append(messages, "Phone number is required")
	} else if !validator.IsPhone(phone) {
		messages = append(messages, "Invalid phone number format")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		messages = append(messages, "Email is required")
	} else if !validator.IsEmail(email) {
		messages = append(messages, "Invalid email format")
	}

	if gst := strings.TrimSpace(req.GST); gst != "" && !validator.IsGSTIN(gst) {
		messages = append(messages, "GST number must be 15 characters")
	}

	return messages
}

func (s *companyService) Get(userID uuid.UUID) (*model.Company, error) {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// Save upserts the per-account company profile: created on first save,
// overwritten (version-guarded) thereafter.
func (s *companyService) Save(req *CompanyRequest, userID uuid.UUID) (*model.Company, error) {
	if err := newValidationError(validateCompany(req)); err != nil {
		return nil, err
	}

	existing, err := s.companyRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		company := &model.Company{
			UserID:  userID,
			Name:    strings.TrimSpace(req.Name),
			Address: strings.TrimSpace(req.Address),
			Phone:   strings.TrimSpace(req.Phone),
			Email:   strings.TrimSpace(req.Email),
			GST:     strings.TrimSpace(req.GST),
			Logo:    req.Logo,
		}
		company.CreatedBy = userID.String()
		company.UpdatedBy = userID.String()
		if err := s.companyRepo.Create(company); err != nil {
			return nil, err
		}
		return company, nil
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Address = strings.TrimSpace(req.Address)
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Email = strings.TrimSpace(req.Email)
	existing.GST = strings.TrimSpace(req.GST)
	existing.Logo = req.Logo
	existing.UpdatedBy = userID.String()

	if err := s.companyRepo.Update(existing, req.Version); err != nil {
		return nil, err
	}
	return existing, nil
}
