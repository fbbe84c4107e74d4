package model

import (
	"time"

	"github.com/google/uuid"
)

// Challan is a delivery note issued to a customer, itemized by product.
type Challan struct {
	BaseModel
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ChallanNumber int              `gorm:"uniqueIndex;not null" json:"challan_number"`
	Date          time.Time        `gorm:"type:date;not null;index" json:"date"`
	Products      []ChallanProduct `gorm:"foreignKey:ChallanID;constraint:OnDelete:CASCADE" json:"products"`
	TotalAmount   float64          `gorm:"not null" json:"total_amount"` // Recomputed on every write, never trusted from the caller
	CustomerName  string           `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string           `gorm:"type:varchar(10);not null" json:"customer_phone"`

	// Optimistic lock counter. Updates must present the version they read.
	Version int `gorm:"not null;default:1" json:"version"`
}

func (Challan) TableName() string {
	return "challans"
}

// ChallanProduct is a single line item of a challan.
type ChallanProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChallanID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	Total     float64   `gorm:"not null" json:"total"` // Always quantity * price, set server-side
}

func (ChallanProduct) TableName() string {
	return "challan_products"
}

// ChallanResponse for API responses (date as YYYY-MM-DD)
type ChallanResponse struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	ChallanNumber int              `json:"challan_number"`
	Date          string           `json:"date"`
	Products      []ChallanProduct `json:"products"`
	TotalAmount   float64          `json:"total_amount"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Version       int              `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CreatedBy     string           `json:"created_by"`
	UpdatedBy     string           `json:"updated_by"`
}

// ToResponse converts Challan to ChallanResponse
func (c *Challan) ToResponse() ChallanResponse {
	products := c.Products
	if products == nil {
		products = []ChallanProduct{}
	}
	return ChallanResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		ChallanNumber: c.ChallanNumber,
		Date:          c.Date.Format("2006-01-02"),
		Products:      products,
		TotalAmount:   c.TotalAmount,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		Version:       c.Version,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		CreatedBy:     c.CreatedBy,
		UpdatedBy:     c.UpdatedBy,
	}
}

// ChallansToResponses converts a slice of challans for API output
func ChallansToResponses(challans []Challan) []ChallanResponse {
	responses := make([]ChallanResponse, len(challans))
	for i := range challans {
		responses[i] = challans[i].ToResponse()
	}
	return responses
}
