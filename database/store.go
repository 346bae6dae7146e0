package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reviu-server/models"
)

// ErrNotFound is returned when a lookup matches no record. Callers can tell
// "no data" from "request failed": an empty slice with a nil error means the
// collection is genuinely empty, never a swallowed failure.
var ErrNotFound = errors.New("record not found")

// ListTenants returns every tenant record
func ListTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := DB.Order("created_at ASC").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return tenants, nil
}

// GetTenant resolves a tenant by identifier
func GetTenant(id string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := DB.First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tenant %s: %w", id, err)
	}
	return &tenant, nil
}

// SaveTenant inserts or replaces a tenant by ID
func SaveTenant(tenant *models.Tenant) error {
	if err := DB.Save(tenant).Error; err != nil {
		return fmt.Errorf("save tenant %s: %w", tenant.ID, err)
	}
	return nil
}

// ListWaiters returns all waiters belonging to a tenant
func ListWaiters(tenantID string) ([]models.Waiter, error) {
	var waiters []models.Waiter
	if err := DB.Where("tenant_id = ?", tenantID).Order("created_at ASC").Find(&waiters).Error; err != nil {
		return nil, fmt.Errorf("list waiters for %s: %w", tenantID, err)
	}
	return waiters, nil
}

// GetWaiter resolves a waiter by identifier within a tenant scope
func GetWaiter(tenantID, id string) (*models.Waiter, error) {
	var waiter models.Waiter
	if err := DB.First(&waiter, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get waiter %s: %w", id, err)
	}
	return &waiter, nil
}

// SaveWaiter inserts or replaces a waiter by ID
func SaveWaiter(waiter *models.Waiter) error {
	if err := DB.Save(waiter).Error; err != nil {
		return fmt.Errorf("save waiter %s: %w", waiter.ID, err)
	}
	return nil
}

// DeleteWaiter removes a waiter within a tenant scope
func DeleteWaiter(tenantID, id string) error {
	result := DB.Where("tenant_id = ?", tenantID).Delete(&models.Waiter{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete waiter %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListReviews returns a tenant's reviews ordered by creation time descending
func ListReviews(tenantID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := DB.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", tenantID, err)
	}
	return reviews, nil
}

// GetReview resolves a review by identifier within a tenant scope
func GetReview(tenantID, id string) (*models.Review, error) {
	var review models.Review
	if err := DB.First(&review, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review %s: %w", id, err)
	}
	return &review, nil
}

// InsertReview writes a new review. Content fields are never updated after
// insertion; only the status can change, via UpdateReviewStatus.
func InsertReview(review *models.Review) error {
	if err := DB.Create(review).Error; err != nil {
		return fmt.Errorf("insert review %s: %w", review.ID, err)
	}
	return nil
}

// UpdateReviewStatus patches the status of a single review within a tenant
// scope.
func UpdateReviewStatus(tenantID, id string, status models.ReviewStatus) error {
	result := DB.Model(&models.Review{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update review %s status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
