package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviu-server/database"
	"reviu-server/services"
)

// RegisterDashboardRoutes registers the manager dashboard aggregate endpoint
func RegisterDashboardRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", getDashboard)
}

// getDashboard assembles the manager landing view: tenant-wide stats plus the
// per-waiter drill-down. Figures are recomputed from the live collections on
// every request.
func getDashboard(c *gin.Context) {
	tenantID := c.GetString("tenant_id")

	waiters, err := database.ListWaiters(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiters"})
		return
	}

	reviews, err := database.ListReviews(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":   services.ComputeTenantStats(waiters, reviews),
		"waiters": services.ComputeWaiterStats(waiters, reviews),
	})
}
