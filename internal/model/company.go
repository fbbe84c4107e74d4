package model

import "github.com/google/uuid"

// Company is the per-account business profile. One row per user,
// created on first save and overwritten thereafter.
type Company struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Address string    `gorm:"type:text;not null" json:"address"`
	Phone   string    `gorm:"type:varchar(10);not null" json:"phone"`
	Email   string    `gorm:"type:varchar(255);not null" json:"email"`
	GST     string    `gorm:"type:varchar(15)" json:"gst,omitempty"`
	Logo    string    `gorm:"type:text" json:"logo,omitempty"`

	// Optimistic lock counter
	Version int `gorm:"not null;default:1" json:"version"`
}

func (Company) TableName() string {
	return "companies"
}
