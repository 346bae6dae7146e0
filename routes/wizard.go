package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviu-server/database"
	"reviu-server/models"
	"reviu-server/services"
)

// wizardManager holds the shared in-memory session store, set at startup
var wizardManager *services.WizardManager

// InitWizard wires the wizard routes to their session manager
func InitWizard(manager *services.WizardManager) {
	wizardManager = manager
}

// RegisterWizardRoutes registers the customer questionnaire endpoints. These
// are public: customers authenticate with nothing, and no handler here can
// reach review data.
func RegisterWizardRoutes(router *gin.RouterGroup) {
	router.POST("/tenants/:tenantId/wizard", startWizard)

	wizard := router.Group("/wizard/:sessionId")
	{
		wizard.GET("", getWizardState)
		wizard.PUT("/identity", setWizardIdentity)
		wizard.PUT("/rating", setWizardRating)
		wizard.PUT("/category", setWizardCategory)
		wizard.POST("/next", advanceWizard)
		wizard.POST("/back", stepWizardBack)
		wizard.POST("/submit", submitWizardComplaint)
		wizard.GET("/share", getWizardShare)
		wizard.POST("/reset", resetWizard)
	}
}

// startWizard opens a session for a tenant. An optional waiter_id pre-binds
// the session to a staff member; it is accepted only when the waiter exists,
// belongs to this tenant and is active.
func startWizard(c *gin.Context) {
	tenantID := c.Param("tenantId")

	var req struct {
		WaiterID string `json:"waiter_id"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session data", "details": err.Error()})
			return
		}
	}

	tenant, err := database.GetTenant(tenantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tenant"})
		return
	}

	var waiter *models.Waiter
	if req.WaiterID != "" {
		w, err := database.GetWaiter(tenant.ID, req.WaiterID)
		if err == nil && w.IsActive {
			waiter = w
		} else if err != nil && !errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve waiter"})
			return
		}
		// unknown or inactive waiters are silently dropped, the session
		// simply starts unbound
	}

	session := wizardManager.Start(tenant, waiter)

	c.JSON(http.StatusCreated, gin.H{
		"session": wizardStateView(session),
	})
}

func getWizardState(c *gin.Context) {
	session, err := wizardManager.Get(c.Param("sessionId"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": wizardStateView(&session)})
}

func setWizardIdentity(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		AgeRange string `json:"age_range"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity data", "details": err.Error()})
		return
	}

	err := wizardManager.SetIdentity(c.Param("sessionId"), models.UserInfo{
		Name:     req.Name,
		Email:    req.Email,
		AgeRange: req.AgeRange,
	})
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Identity recorded"})
}

func setWizardRating(c *gin.Context) {
	var req struct {
		Dimension string `json:"dimension" binding:"required"`
		Value     int    `json:"value" binding:"required,min=1,max=5"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating data", "details": err.Error()})
		return
	}

	err := wizardManager.SetRating(c.Param("sessionId"), services.Dimension(req.Dimension), req.Value, req.Comment)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating recorded"})
}

func setWizardCategory(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category data", "details": err.Error()})
		return
	}

	if err := wizardManager.SetCategory(c.Param("sessionId"), req.Category); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category recorded"})
}

func advanceWizard(c *gin.Context) {
	session, err := wizardManager.Next(c.Param("sessionId"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": wizardStateView(&session)})
}

func stepWizardBack(c *gin.Context) {
	session, err := wizardManager.Back(c.Param("sessionId"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": wizardStateView(&session)})
}

func submitWizardComplaint(c *gin.Context) {
	var req struct {
		Comment string `json:"comment"`
		Phone   string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint data", "details": err.Error()})
		return
	}

	session, err := wizardManager.Submit(c.Param("sessionId"), req.Comment, req.Phone)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": wizardStateView(&session)})
}

func getWizardShare(c *gin.Context) {
	payload, err := wizardManager.Share(c.Param("sessionId"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func resetWizard(c *gin.Context) {
	session, err := wizardManager.Reset(c.Param("sessionId"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": wizardStateView(&session)})
}

// wizardStateView is the client-facing session snapshot
func wizardStateView(s *services.WizardSession) gin.H {
	view := gin.H{
		"id":             s.ID,
		"tenant_id":      s.TenantID,
		"tenant_name":    s.TenantName,
		"step":           int(s.Step),
		"negative_flow":  s.NegativeFlow,
		"submitted":      s.Submitted,
		"user_info":      s.UserInfo,
		"ratings":        s.Breakdown,
		"comments":       s.BreakdownComments,
		"details":        s.Details,
		"age_ranges":     models.AgeRanges,
		"categories":     models.ComplaintCategories,
		"rating_prompts": services.RatingPrompts,
	}
	if s.Waiter != nil {
		view["waiter"] = s.Waiter
	}
	return view
}

// respondWizardError maps wizard domain errors to HTTP statuses. Unmet step
// requirements answer 409 without a message body change: forward navigation
// is silently refused, mirroring a disabled button rather than a form error.
func respondWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
	case errors.Is(err, services.ErrStepIncomplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Step requirements not met"})
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "Transition not allowed"})
	case errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidDimension),
		errors.Is(err, services.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSubmissionRejected):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected wizard error"})
	}
}
