package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviu-server/database"
	"reviu-server/types"
	"reviu-server/utils"
)

// RegisterAuthRoutes registers the PIN unlock endpoints. The group is
// expected to sit behind the strict auth rate limiter.
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/manager/unlock", managerUnlock)
	router.POST("/admin/unlock", adminUnlock)
}

// managerUnlock exchanges a tenant's 4-digit manager PIN for a scoped token.
// Failures are recoverable: 401, retry freely (subject to throttling).
func managerUnlock(c *gin.Context) {
	var req struct {
		TenantID string `json:"tenant_id" binding:"required"`
		Pin      string `json:"pin" binding:"required,len=4,numeric"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unlock data", "details": err.Error()})
		return
	}

	tenant, err := database.GetTenant(req.TenantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha Inválida"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tenant"})
		return
	}

	if !utils.CheckPinHash(req.Pin, tenant.ManagerPinHash) {
		log.Printf("🔒 Failed manager unlock for tenant %s", req.TenantID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha Inválida"})
		return
	}

	token, err := utils.GenerateScopeToken(tenant.ID, types.RoleManager)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"tenant": tenant.Public(),
	})
}

// adminUnlock exchanges the platform admin PIN for an admin token
func adminUnlock(c *gin.Context) {
	var req struct {
		Pin string `json:"pin" binding:"required,len=4,numeric"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unlock data", "details": err.Error()})
		return
	}

	if !utils.CheckPinHash(req.Pin, adminPinHash) {
		log.Printf("🔒 Failed admin unlock attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha Inválida"})
		return
	}

	token, err := utils.GenerateScopeToken("", types.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// adminPinHash is derived once at startup from the configured admin PIN so
// the plaintext is never compared directly.
var adminPinHash string

// InitAdminCredential hashes the configured admin PIN for later unlocks
func InitAdminCredential(pin string) error {
	hash, err := utils.HashPin(pin)
	if err != nil {
		return err
	}
	adminPinHash = hash
	return nil
}
