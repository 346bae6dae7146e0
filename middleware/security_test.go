package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterKeyedLimiters(t *testing.T) {
	rl := NewRateLimiter()

	a := rl.GetLimiter("a", rate.Every(time.Second), 1)
	b := rl.GetLimiter("b", rate.Every(time.Second), 1)
	assert.NotSame(t, a, b)

	// same key returns the same limiter
	assert.Same(t, a, rl.GetLimiter("a", rate.Every(time.Second), 1))

	assert.True(t, a.Allow())
	assert.False(t, a.Allow())
	// b has its own budget
	assert.True(t, b.Allow())
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiter("stale", rate.Every(time.Second), 1)
	rl.lastSeen["stale"] = time.Now().Add(-2 * time.Hour)
	rl.GetLimiter("fresh", rate.Every(time.Second), 1)

	rl.Cleanup()

	assert.NotContains(t, rl.limiters, "stale")
	assert.Contains(t, rl.limiters, "fresh")
}

func TestAuthRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthRateLimitMiddleware())
	router.POST("/unlock", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var lastStatus int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/unlock", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		router.ServeHTTP(w, req)
		lastStatus = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastStatus)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
