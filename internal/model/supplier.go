package model

// Supplier represents a goods supplier
type Supplier struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Phone   string `gorm:"type:varchar(10);not null" json:"phone"`
	Address string `gorm:"type:text;not null" json:"address"`
	GST     string `gorm:"type:varchar(15)" json:"gst,omitempty"` // Optional 15-char GSTIN

	// Optimistic lock counter
	Version int `gorm:"not null;default:1" json:"version"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
