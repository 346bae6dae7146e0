package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviu-server/models"
)

func scopeTenant() *models.Tenant {
	return &models.Tenant{
		ID:               "TEN-1001",
		Name:             "BISTRÔ CENTRAL",
		ManagerPinHash:   "$2a$10$secret",
		GoogleReviewLink: "https://g.page/bistro/review",
		IsActive:         true,
	}
}

func scopeWaiters() []models.Waiter {
	return []models.Waiter{
		{ID: "WTR-2001", Name: "CARLOS", IsActive: true},
		{ID: "WTR-2002", Name: "MARIA", IsActive: false},
		{ID: "WTR-2003", Name: "JOÃO", IsActive: true},
	}
}

func TestResolveScope(t *testing.T) {
	t.Run("no tenant falls to landing", func(t *testing.T) {
		scope := ResolveScope(nil, "", "", nil)
		assert.Equal(t, ModeLanding, scope.Mode)
		assert.Nil(t, scope.Tenant)
		assert.Empty(t, scope.Waiters)
	})

	t.Run("manager mode starts locked", func(t *testing.T) {
		scope := ResolveScope(scopeTenant(), "manager", "", scopeWaiters())
		assert.Equal(t, ModeManager, scope.Mode)
		assert.True(t, scope.Locked)
		require.NotNil(t, scope.Tenant)
		assert.Equal(t, "TEN-1001", scope.Tenant.ID)
		// no roster before unlock
		assert.Empty(t, scope.Waiters)
	})

	t.Run("wizard mode carries active roster only", func(t *testing.T) {
		scope := ResolveScope(scopeTenant(), "", "", scopeWaiters())
		assert.Equal(t, ModeWizard, scope.Mode)
		assert.False(t, scope.Locked)
		require.Len(t, scope.Waiters, 2)
		assert.Equal(t, "WTR-2001", scope.Waiters[0].ID)
		assert.Equal(t, "WTR-2003", scope.Waiters[1].ID)
	})

	t.Run("waiter pre-binding", func(t *testing.T) {
		scope := ResolveScope(scopeTenant(), "", "WTR-2003", scopeWaiters())
		require.NotNil(t, scope.Waiter)
		assert.Equal(t, "WTR-2003", scope.Waiter.ID)
	})

	t.Run("inactive waiter not bound", func(t *testing.T) {
		scope := ResolveScope(scopeTenant(), "", "WTR-2002", scopeWaiters())
		assert.Nil(t, scope.Waiter)
	})

	t.Run("unknown waiter not bound", func(t *testing.T) {
		scope := ResolveScope(scopeTenant(), "", "WTR-9999", scopeWaiters())
		assert.Nil(t, scope.Waiter)
	})
}
