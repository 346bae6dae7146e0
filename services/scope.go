package services

import (
	"reviu-server/models"
)

// ScopeMode is the resolved entry mode for a browser session
type ScopeMode string

const (
	ModeLanding ScopeMode = "landing"
	ModeManager ScopeMode = "manager"
	ModeWizard  ScopeMode = "wizard"
)

// Scope describes what a session may see before (and after) unlocking.
// Customer scope carries the active waiter roster and never review data;
// manager scope starts locked and carries nothing until the PIN unlock.
type Scope struct {
	Mode   ScopeMode            `json:"mode"`
	Locked bool                 `json:"locked"`
	Tenant *models.TenantPublic `json:"tenant,omitempty"`
	Waiter *models.Waiter       `json:"waiter,omitempty"`
	// Waiters is populated for customer scope only (active staff)
	Waiters []models.Waiter `json:"waiters,omitempty"`
}

// ResolveScope computes the entry scope from the URL parameters. tenant is
// nil when the identifier was absent or did not resolve; waiters is the
// tenant's full roster. The waiterID pre-binding is accepted only when it
// names an active waiter of that tenant.
func ResolveScope(tenant *models.Tenant, mode string, waiterID string, waiters []models.Waiter) Scope {
	if tenant == nil {
		return Scope{Mode: ModeLanding}
	}

	public := tenant.Public()

	if mode == "manager" {
		return Scope{
			Mode:   ModeManager,
			Locked: true,
			Tenant: &public,
		}
	}

	scope := Scope{
		Mode:    ModeWizard,
		Tenant:  &public,
		Waiters: activeWaiters(waiters),
	}
	if waiterID != "" {
		for i := range scope.Waiters {
			if scope.Waiters[i].ID == waiterID {
				scope.Waiter = &scope.Waiters[i]
				break
			}
		}
	}
	return scope
}

func activeWaiters(waiters []models.Waiter) []models.Waiter {
	out := make([]models.Waiter, 0, len(waiters))
	for _, w := range waiters {
		if w.IsActive {
			out = append(out, w)
		}
	}
	return out
}
