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

// RegisterAdminTenantRoutes registers the platform-operator tenant management
// endpoints. Tenant deletion is deliberately absent; deactivation is the way
// to retire an establishment.
func RegisterAdminTenantRoutes(router *gin.RouterGroup) {
	tenants := router.Group("/tenants")
	{
		tenants.GET("", listTenantsAdmin)
		tenants.POST("", createTenant)
		tenants.PUT("/:id", updateTenant)
	}
}

// RegisterManagerSettingsRoutes registers the manager self-service settings
func RegisterManagerSettingsRoutes(router *gin.RouterGroup) {
	router.PUT("/settings/review-link", updateReviewLink)
}

func listTenantsAdmin(c *gin.Context) {
	tenants, err := database.ListTenants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tenants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenants": tenants, "count": len(tenants)})
}

// createTenant provisions an establishment: uppercased name, bcrypt-hashed
// manager PIN, and the platform default review link when none is given.
func createTenant(c *gin.Context) {
	var req models.TenantCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant data", "details": err.Error()})
		return
	}

	pinHash, err := utils.HashPin(req.ManagerPin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to secure manager PIN"})
		return
	}

	link := req.GoogleReviewLink
	if link == "" {
		link = config.AppConfig.Review.DefaultGoogleReviewLink
	}

	tenant := models.Tenant{
		ID:               utils.NewTenantID(),
		Name:             strings.ToUpper(strings.TrimSpace(req.Name)),
		ManagerPinHash:   pinHash,
		GoogleReviewLink: link,
		IsActive:         true,
	}
	if err := database.SaveTenant(&tenant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant"})
		return
	}

	log.Printf("🏢 Tenant created: id=%s name=%s", tenant.ID, tenant.Name)
	c.JSON(http.StatusCreated, gin.H{"tenant": tenant})
}

// updateTenant edits an establishment. Only provided fields change; a new PIN
// replaces the stored hash.
func updateTenant(c *gin.Context) {
	tenantID := c.Param("id")

	var req models.TenantUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant data", "details": err.Error()})
		return
	}

	tenant, err := database.GetTenant(tenantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tenant"})
		return
	}

	if req.Name != "" {
		tenant.Name = strings.ToUpper(strings.TrimSpace(req.Name))
	}
	if req.GoogleReviewLink != "" {
		tenant.GoogleReviewLink = req.GoogleReviewLink
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}
	if req.ManagerPin != "" {
		pinHash, err := utils.HashPin(req.ManagerPin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to secure manager PIN"})
			return
		}
		tenant.ManagerPinHash = pinHash
	}

	if err := database.SaveTenant(tenant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant"})
		return
	}

	log.Printf("🏢 Tenant updated: id=%s", tenant.ID)
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

// updateReviewLink lets a manager set their own Google review target without
// going through the platform operator.
func updateReviewLink(c *gin.Context) {
	tenantID := c.GetString("tenant_id")

	var req struct {
		GoogleReviewLink string `json:"google_review_link" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link", "details": err.Error()})
		return
	}

	tenant, err := database.GetTenant(tenantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tenant"})
		return
	}

	tenant.GoogleReviewLink = req.GoogleReviewLink
	if err := database.SaveTenant(tenant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenant": tenant.Public()})
}
