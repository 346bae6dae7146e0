package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviu-server/database"
	"reviu-server/models"
	"reviu-server/services"
)

// RegisterSessionRoutes registers the entry scope resolution endpoint
func RegisterSessionRoutes(router *gin.RouterGroup) {
	router.GET("/session", resolveSession)
}

// resolveSession resolves the browser entry parameters into a scope:
// landing (no tenant), locked manager view, or the customer wizard.
// Customer scope receives the active waiter roster and never review data;
// manager scope receives nothing until the PIN unlock.
func resolveSession(c *gin.Context) {
	tenantID := c.Query("t")
	mode := c.Query("m")
	waiterID := c.Query("wtr")

	if tenantID == "" {
		c.JSON(http.StatusOK, services.ResolveScope(nil, mode, waiterID, nil))
		return
	}

	tenant, err := database.GetTenant(tenantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// unknown tenant falls back to the landing view
			c.JSON(http.StatusOK, services.ResolveScope(nil, mode, waiterID, nil))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tenant"})
		return
	}

	var waiters []models.Waiter
	if mode != "manager" {
		waiters, err = database.ListWaiters(tenant.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiters"})
			return
		}
	}

	c.JSON(http.StatusOK, services.ResolveScope(tenant, mode, waiterID, waiters))
}

// RegisterTenantDirectoryRoutes exposes the public tenant list used by the
// manual "switch mode" tenant selection prompt. Only public projections are
// returned.
func RegisterTenantDirectoryRoutes(router *gin.RouterGroup) {
	router.GET("/tenants", listPublicTenants)
}

func listPublicTenants(c *gin.Context) {
	tenants, err := database.ListTenants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tenants"})
		return
	}

	public := make([]models.TenantPublic, 0, len(tenants))
	for i := range tenants {
		public = append(public, tenants[i].Public())
	}

	c.JSON(http.StatusOK, gin.H{"tenants": public})
}
