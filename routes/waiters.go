package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reviu-server/config"
	"reviu-server/database"
	"reviu-server/models"
	"reviu-server/utils"
)

// RegisterWaiterRoutes registers the manager staff roster endpoints
func RegisterWaiterRoutes(router *gin.RouterGroup) {
	waiters := router.Group("/waiters")
	{
		waiters.GET("", listWaiters)
		waiters.POST("", createWaiter)
		waiters.PATCH("/:id/status", toggleWaiterStatus)
		waiters.DELETE("/:id", deleteWaiter)
		waiters.GET("/:id/qrcode", getWaiterQRCode)
	}
}

func listWaiters(c *gin.Context) {
	tenantID := c.GetString("tenant_id")

	waiters, err := database.ListWaiters(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"waiters": waiters, "count": len(waiters)})
}

// createWaiter adds a staff member to the roster. Names are stored uppercased
// and new waiters start active.
func createWaiter(c *gin.Context) {
	tenantID := c.GetString("tenant_id")

	var req models.WaiterCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid waiter data", "details": err.Error()})
		return
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Waiter name is required"})
		return
	}

	waiter := models.Waiter{
		ID:       utils.NewWaiterID(),
		TenantID: tenantID,
		Name:     name,
		IsActive: true,
	}
	if err := database.SaveWaiter(&waiter); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create waiter"})
		return
	}

	log.Printf("👤 Waiter created: tenant=%s waiter=%s name=%s", tenantID, waiter.ID, waiter.Name)
	c.JSON(http.StatusCreated, gin.H{"waiter": waiter})
}

// toggleWaiterStatus flips a waiter between active and inactive. Inactive
// waiters stay in history but leave the customer wizard roster.
func toggleWaiterStatus(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	waiterID := c.Param("id")

	waiter, err := database.GetWaiter(tenantID, waiterID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Waiter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiter"})
		return
	}

	waiter.IsActive = !waiter.IsActive
	if err := database.SaveWaiter(waiter); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update waiter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"waiter": waiter})
}

// deleteWaiter removes a waiter permanently. Existing reviews keep their
// waiter reference for history.
func deleteWaiter(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	waiterID := c.Param("id")

	if err := database.DeleteWaiter(tenantID, waiterID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Waiter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete waiter"})
		return
	}

	log.Printf("🗑️ Waiter deleted: tenant=%s waiter=%s", tenantID, waiterID)
	c.JSON(http.StatusOK, gin.H{"message": "Waiter deleted", "waiter_id": waiterID})
}

// getWaiterQRCode returns the deep link that pre-binds the wizard to this
// waiter, plus a rendered QR image URL for printing.
func getWaiterQRCode(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	waiterID := c.Param("id")

	waiter, err := database.GetWaiter(tenantID, waiterID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Waiter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load waiter"})
		return
	}

	link := utils.WaiterFeedbackURL(config.AppConfig.Review.FeedbackBaseURL, tenantID, waiter.ID)
	c.JSON(http.StatusOK, gin.H{
		"waiter_id":    waiter.ID,
		"waiter_name":  waiter.Name,
		"feedback_url": link,
		"qrcode_url":   utils.QRCodeImageURL(link),
	})
}
