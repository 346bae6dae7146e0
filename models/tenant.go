package models

import (
	"time"
)

// Tenant represents a subscribing establishment, the unit of data isolation
type Tenant struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(20)"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	ManagerPinHash   string    `json:"-" gorm:"size:255;not null"` // bcrypt, never serialized
	GoogleReviewLink string    `json:"google_review_link" gorm:"size:500"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Waiters []Waiter `json:"waiters,omitempty" gorm:"foreignKey:TenantID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:TenantID"`
}

// TenantCreate represents the request structure for creating a tenant
type TenantCreate struct {
	Name             string `json:"name" binding:"required"`
	ManagerPin       string `json:"manager_pin" binding:"required,len=4,numeric"`
	GoogleReviewLink string `json:"google_review_link"`
}

// TenantUpdate represents the request structure for updating tenant settings
type TenantUpdate struct {
	Name             string `json:"name"`
	ManagerPin       string `json:"manager_pin" binding:"omitempty,len=4,numeric"`
	GoogleReviewLink string `json:"google_review_link"`
	IsActive         *bool  `json:"is_active"`
}

// TenantPublic is the projection safe for unauthenticated customer sessions
type TenantPublic struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	GoogleReviewLink string `json:"google_review_link"`
	IsActive         bool   `json:"is_active"`
}

// Public strips credential material from a tenant record
func (t *Tenant) Public() TenantPublic {
	return TenantPublic{
		ID:               t.ID,
		Name:             t.Name,
		GoogleReviewLink: t.GoogleReviewLink,
		IsActive:         t.IsActive,
	}
}

// TableName specifies the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}
