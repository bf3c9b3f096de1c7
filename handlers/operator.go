// File: handlers/operator.go
package handlers

import (
	"net/http"
	"strconv"

	ledgerRepo "bizbuddy/database/repository/ledger"
	"bizbuddy/utils"

	"github.com/gin-gonic/gin"
)

// OperatorHandler exposes read-only views over the ledger for staff
// follow-up (who asked for a callback, what got booked).
type OperatorHandler struct {
	ledger ledgerRepo.Ledger
}

func NewOperatorHandler(ledger ledgerRepo.Ledger) *OperatorHandler {
	return &OperatorHandler{ledger: ledger}
}

// GetCustomerBookings returns a customer's booking history, newest first.
func (h *OperatorHandler) GetCustomerBookings(c *gin.Context) {
	customer := c.Param("customer")
	records, err := h.ledger.BookingsByCustomer(c.Request.Context(), customer)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "bookings": records})
}

// GetRecentCallbacks returns the latest callback requests.
func (h *OperatorHandler) GetRecentCallbacks(c *gin.Context) {
	records, err := h.ledger.RecentCallbacks(c.Request.Context(), queryLimit(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch callbacks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"callbacks": records})
}

// GetRecentDeliveries returns the latest delivery requests.
func (h *OperatorHandler) GetRecentDeliveries(c *gin.Context) {
	records, err := h.ledger.RecentDeliveries(c.Request.Context(), queryLimit(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch deliveries", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliveries": records})
}

func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		return 50
	}
	return limit
}
