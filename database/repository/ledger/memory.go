package ledgerRepo

import (
	"context"
	"sync"
	"time"

	"bizbuddy/models"

	"github.com/google/uuid"
)

// MemoryLedger is an in-process Ledger for development and tests. Exported
// (unlike the other backends) so tests can inspect appended records directly.
type MemoryLedger struct {
	mu         sync.RWMutex
	Bookings   []models.BookingRecord
	Callbacks  []models.CallbackRequest
	Deliveries []models.DeliveryRequest
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

func (l *MemoryLedger) AppendBooking(ctx context.Context, record models.BookingRecord) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = time.Now()
	l.Bookings = append(l.Bookings, record)
	return record.ID, nil
}

func (l *MemoryLedger) AppendCallback(ctx context.Context, record models.CallbackRequest) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = time.Now()
	l.Callbacks = append(l.Callbacks, record)
	return record.ID, nil
}

func (l *MemoryLedger) AppendDelivery(ctx context.Context, record models.DeliveryRequest) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = time.Now()
	l.Deliveries = append(l.Deliveries, record)
	return record.ID, nil
}

func (l *MemoryLedger) BookingsByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var records []models.BookingRecord
	for _, record := range l.Bookings {
		if record.Customer == customerID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (l *MemoryLedger) RecentCallbacks(ctx context.Context, limit int) ([]models.CallbackRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	records := append([]models.CallbackRequest(nil), l.Callbacks...)
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

func (l *MemoryLedger) RecentDeliveries(ctx context.Context, limit int) ([]models.DeliveryRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	records := append([]models.DeliveryRequest(nil), l.Deliveries...)
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}
