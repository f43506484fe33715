package model

import "time"

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleVoided    SaleStatus = "voided"
)

type Sale struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	InvoiceNo   string     `gorm:"size:50;not null;uniqueIndex" json:"invoice_no"`
	PartyID     *uint      `gorm:"index" json:"party_id,omitempty"` // walk-in sales carry no party
	SaleDate    time.Time  `gorm:"not null;index" json:"sale_date"`
	TotalAmount float64    `gorm:"not null" json:"total_amount"`
	Status      SaleStatus `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedBy   uint       `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

type SaleItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	SaleID    uint    `gorm:"not null;index" json:"sale_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	LineTotal float64 `gorm:"not null" json:"line_total"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}
