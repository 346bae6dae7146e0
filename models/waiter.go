package models

import (
	"time"
)

// Waiter represents a staff member of a tenant. A waiter belongs to exactly
// one tenant.
type Waiter struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(20)"`
	TenantID  string    `json:"tenant_id" gorm:"type:varchar(20);index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// WaiterCreate represents the request structure for adding a waiter
type WaiterCreate struct {
	Name string `json:"name" binding:"required"`
}

// WaiterStats carries per-waiter dashboard figures. Average is formatted to
// one decimal, or "N/A" when the waiter has no reviews.
type WaiterStats struct {
	Waiter
	ReviewCount int      `json:"review_count"`
	Average     string   `json:"average"`
	Reviews     []Review `json:"reviews"`
}

// TableName specifies the table name for the Waiter model
func (Waiter) TableName() string {
	return "waiters"
}
