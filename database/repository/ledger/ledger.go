package ledgerRepo

import (
	"context"

	"bizbuddy/models"
)

// Collection names shared by every backend.
const (
	BookingsCollection   = "bookings"
	CallbacksCollection  = "callbacks"
	DeliveriesCollection = "deliveries"
)

// Ledger is the append-only record of confirmed bookings, callback requests
// and delivery requests. Appends assign the server timestamp at write time;
// records are never mutated or deleted.
type Ledger interface {
	AppendBooking(ctx context.Context, record models.BookingRecord) (string, error)
	AppendCallback(ctx context.Context, record models.CallbackRequest) (string, error)
	AppendDelivery(ctx context.Context, record models.DeliveryRequest) (string, error)

	// Operator reads.
	BookingsByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error)
	RecentCallbacks(ctx context.Context, limit int) ([]models.CallbackRequest, error)
	RecentDeliveries(ctx context.Context, limit int) ([]models.DeliveryRequest, error)
}
