package model

import "time"

// LookupFields is the shape shared by every master-data lookup table:
// a unique name, an active flag, and audit columns. The six lookup
// entities embed it and differ only in table name.
type LookupFields struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedBy uint      `gorm:"not null" json:"created_by"`
	UpdatedBy uint      `gorm:"not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields exposes the embedded lookup columns to the generic
// repository without reflection.
func (l *LookupFields) Fields() *LookupFields { return l }

// LookupRecord is implemented (by promotion) by a pointer to any
// entity embedding LookupFields.
type LookupRecord interface {
	Fields() *LookupFields
}

// LookupPtr ties the pointer type of a lookup entity to LookupRecord
// for the generic repository and service.
type LookupPtr[T any] interface {
	*T
	LookupRecord
}

type BusinessType struct {
	LookupFields
}

func (BusinessType) TableName() string {
	return "business_types"
}

type IndustryType struct {
	LookupFields
}

func (IndustryType) TableName() string {
	return "industry_types"
}

type RegistrationType struct {
	LookupFields
}

func (RegistrationType) TableName() string {
	return "registration_types"
}

type State struct {
	LookupFields
}

func (State) TableName() string {
	return "states"
}

type Category struct {
	LookupFields
}

func (Category) TableName() string {
	return "categories"
}

type Role struct {
	LookupFields
}

func (Role) TableName() string {
	return "roles"
}
