// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Channel webhook.
	InboundMessageHandler gin.HandlerFunc

	// Operator endpoints.
	GetCustomerBookingsHandler gin.HandlerFunc
	GetRecentCallbacksHandler  gin.HandlerFunc
	GetRecentDeliveriesHandler gin.HandlerFunc
}
