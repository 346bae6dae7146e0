package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviu-server/database"
	"reviu-server/models"
	"reviu-server/services"
	"reviu-server/websocket"
)

// notifyHub pushes review events to connected manager dashboards, set at
// startup
var notifyHub *websocket.Hub

// InitNotificationHub wires the routes to the dashboard notification hub
func InitNotificationHub(hub *websocket.Hub) {
	notifyHub = hub
}

// RegisterReviewRoutes registers the manager review list and resolution
// endpoints.
func RegisterReviewRoutes(router *gin.RouterGroup) {
	router.GET("/reviews", listReviews)
	router.POST("/reviews/:id/resolve", resolveReview)
}

// listReviews returns the tenant's reviews, newest first, optionally
// restricted by ?filter=pending|resolved. "resolved" covers published
// positives as well.
func listReviews(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	filter := services.ParseReviewFilter(c.Query("filter"))

	reviews, err := database.ListReviews(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	filtered := services.FilterReviews(reviews, filter)
	c.JSON(http.StatusOK, gin.H{
		"reviews": filtered,
		"filter":  filter,
		"count":   len(filtered),
	})
}

// resolveReview marks a pending complaint as handled. The transition only
// runs pending_resolution -> resolved; published and already-resolved reviews
// are rejected.
func resolveReview(c *gin.Context) {
	tenantID := c.GetString("tenant_id")
	reviewID := c.Param("id")

	review, err := database.GetReview(tenantID, reviewID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}
	if review.Status != models.StatusPendingResolution {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending reviews can be resolved"})
		return
	}

	if err := database.UpdateReviewStatus(tenantID, reviewID, models.StatusResolved); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	log.Printf("✅ Review resolved: tenant=%s review=%s", tenantID, reviewID)

	if notifyHub != nil {
		notifyHub.Notify(websocket.EventReviewResolved, tenantID, gin.H{"review_id": reviewID})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review resolved", "review_id": reviewID})
}
