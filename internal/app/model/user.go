package model

import "time"

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:100;not null;uniqueIndex" json:"username"` // login identifier
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`    // also accepted at login
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"size:200;not null" json:"full_name"`
	Phone        string    `gorm:"size:30" json:"phone"`
	RoleID       *uint     `gorm:"index" json:"role_id,omitempty"` // optional role assignment
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedBy    uint      `gorm:"not null" json:"created_by"`
	UpdatedBy    uint      `gorm:"not null" json:"updated_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}
