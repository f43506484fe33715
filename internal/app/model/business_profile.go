package model

import "time"

// BusinessProfile is the tenant's own business. Effectively a
// singleton: the service always reads the newest row. On the local
// sqlite dialect these models define the schema; against SQL Server
// the table shape is externally managed and the repository discovers
// it at runtime, so the column tags here pin the exact names the
// dialect descriptors expect for the owned schema.
type BusinessProfile struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"column:name;size:200;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Phone     string    `gorm:"column:phone;size:30" json:"phone"`
	GSTNumber string    `gorm:"column:gst_number;size:20" json:"gst_number"`
	PANNumber string    `gorm:"column:pan_number;size:20" json:"pan_number"`
	Notes     string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedBy uint      `gorm:"column:created_by" json:"created_by"`
	UpdatedBy uint      `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	LogoName             string `gorm:"column:logo_name;size:255" json:"logo_name"`
	LogoContentType      string `gorm:"column:logo_content_type;size:100" json:"logo_content_type"`
	LogoData             []byte `gorm:"column:logo_data" json:"-"`
	SignatureName        string `gorm:"column:signature_name;size:255" json:"signature_name"`
	SignatureContentType string `gorm:"column:signature_content_type;size:100" json:"signature_content_type"`
	SignatureData        []byte `gorm:"column:signature_data" json:"-"`

	Address         *BusinessAddress `gorm:"-" json:"address,omitempty"`
	BusinessTypeIDs []int64          `gorm:"-" json:"business_type_ids"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// BusinessAddress is zero-or-one per profile, created lazily on the
// first save that carries address data and updated in place after.
type BusinessAddress struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	ProfileID      uint   `gorm:"column:profile_id;not null;uniqueIndex" json:"profile_id"`
	BillingAddress string `gorm:"column:billing_address;type:text" json:"billing_address"`
	City           string `gorm:"column:city;size:100" json:"city"`
	PostalCode     string `gorm:"column:postal_code;size:10" json:"postal_code"`
	StateID        *uint  `gorm:"column:state_id;index" json:"state_id,omitempty"`
	CreatedBy      uint   `gorm:"column:created_by" json:"created_by"`
	UpdatedBy      uint   `gorm:"column:updated_by" json:"updated_by"`
}

func (BusinessAddress) TableName() string {
	return "business_addresses"
}

// BusinessTypeAssignment links a profile to a business-type lookup
// row. The set is replaced wholesale on every profile save.
type BusinessTypeAssignment struct {
	ID             uint `gorm:"primarykey" json:"id"`
	ProfileID      uint `gorm:"column:profile_id;not null;index" json:"profile_id"`
	BusinessTypeID uint `gorm:"column:business_type_id;not null" json:"business_type_id"`
}

func (BusinessTypeAssignment) TableName() string {
	return "business_type_assignments"
}
