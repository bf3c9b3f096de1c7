package routes

import (
	"net/http"
	"time"

	"bizbuddy/handlers"
	"bizbuddy/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the inbound message endpoint.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/webhook", hb.InboundMessageHandler)
}

// RegisterOperatorRoutes registers read-only ledger views for staff.
func RegisterOperatorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/operator")
	{
		api.GET("/bookings/:customer", hb.GetCustomerBookingsHandler)
		api.GET("/callbacks", hb.GetRecentCallbacksHandler)
		api.GET("/deliveries", hb.GetRecentDeliveriesHandler)
	}
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "BizBuddy backend is live and ready for /webhook")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWebhookRoutes(r, hb)
	RegisterOperatorRoutes(r, hb)
	RegisterHealthRoute(r)
}
