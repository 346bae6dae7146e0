package routes

import (
	"github.com/gin-gonic/gin"

	"reviu-server/websocket"
)

// RegisterNotificationRoutes registers the manager dashboard live-event
// stream. The connection inherits the tenant scope from the manager token,
// so a dashboard only ever receives its own tenant's events.
func RegisterNotificationRoutes(router *gin.RouterGroup) {
	router.GET("/notifications/ws", func(c *gin.Context) {
		tenantID := c.GetString("tenant_id")
		websocket.ServeWebSocket(notifyHub, c.Writer, c.Request, tenantID)
	})
}
