package model

import "time"

type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// Party is a customer or supplier. The address, contact, and bank
// detail rows are written together with the party inside a single
// transaction; a partial save is never committed.
type Party struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Type      PartyType `gorm:"type:varchar(20);not null;default:'customer'" json:"type"`
	GSTNumber string    `gorm:"column:gst_number;size:20" json:"gst_number"`
	PANNumber string    `gorm:"column:pan_number;size:20" json:"pan_number"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedBy uint      `gorm:"not null" json:"created_by"`
	UpdatedBy uint      `gorm:"not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address    *PartyAddress    `gorm:"foreignKey:PartyID" json:"address,omitempty"`
	Contact    *PartyContact    `gorm:"foreignKey:PartyID" json:"contact,omitempty"`
	BankDetail *PartyBankDetail `gorm:"foreignKey:PartyID" json:"bank_detail,omitempty"`
}

func (Party) TableName() string {
	return "parties"
}

type PartyAddress struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	PartyID        uint   `gorm:"not null;uniqueIndex" json:"party_id"`
	BillingAddress string `gorm:"type:text" json:"billing_address"`
	City           string `gorm:"size:100" json:"city"`
	PostalCode     string `gorm:"size:10" json:"postal_code"`
	StateID        *uint  `gorm:"index" json:"state_id,omitempty"`
}

func (PartyAddress) TableName() string {
	return "party_addresses"
}

type PartyContact struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	PartyID     uint   `gorm:"not null;uniqueIndex" json:"party_id"`
	ContactName string `gorm:"size:200" json:"contact_name"`
	Phone       string `gorm:"size:30" json:"phone"`
	Email       string `gorm:"size:255" json:"email"`
}

func (PartyContact) TableName() string {
	return "party_contacts"
}

type PartyBankDetail struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	PartyID       uint   `gorm:"not null;uniqueIndex" json:"party_id"`
	BankName      string `gorm:"size:200" json:"bank_name"`
	AccountNumber string `gorm:"size:50" json:"account_number"`
	IFSC          string `gorm:"column:ifsc;size:20" json:"ifsc"`
}

func (PartyBankDetail) TableName() string {
	return "party_bank_details"
}
