package model

import "time"

type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Code        string    `gorm:"size:50;not null;uniqueIndex" json:"code"` // SKU / barcode
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	TaxRate     float64   `json:"tax_rate"` // percent
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Unit        string    `gorm:"size:20" json:"unit"` // pcs, kg, box
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	UpdatedBy   uint      `gorm:"not null" json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
