package ledgerRepo

import (
	"context"
	"time"

	"bizbuddy/models"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

type firestoreLedger struct {
	client *firestore.Client
}

// NewFirestoreLedger returns a Ledger backed by Firestore collections,
// matching the layout the original deployment used.
func NewFirestoreLedger(client *firestore.Client) Ledger {
	return &firestoreLedger{client: client}
}

func (l *firestoreLedger) append(ctx context.Context, collection, id string, record any) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}
	_, err := l.client.Collection(collection).Doc(id).Set(ctx, record)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (l *firestoreLedger) AppendBooking(ctx context.Context, record models.BookingRecord) (string, error) {
	record.Timestamp = time.Now()
	id, err := l.append(ctx, BookingsCollection, record.ID, record)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (l *firestoreLedger) AppendCallback(ctx context.Context, record models.CallbackRequest) (string, error) {
	record.Timestamp = time.Now()
	return l.append(ctx, CallbacksCollection, record.ID, record)
}

func (l *firestoreLedger) AppendDelivery(ctx context.Context, record models.DeliveryRequest) (string, error) {
	record.Timestamp = time.Now()
	return l.append(ctx, DeliveriesCollection, record.ID, record)
}

func (l *firestoreLedger) BookingsByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error) {
	iterDocs, err := l.client.Collection(BookingsCollection).
		Where("Customer", "==", customerID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	records := make([]models.BookingRecord, 0, len(iterDocs))
	for _, doc := range iterDocs {
		var record models.BookingRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (l *firestoreLedger) RecentCallbacks(ctx context.Context, limit int) ([]models.CallbackRequest, error) {
	iterDocs, err := l.client.Collection(CallbacksCollection).
		OrderBy("Timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	records := make([]models.CallbackRequest, 0, len(iterDocs))
	for _, doc := range iterDocs {
		var record models.CallbackRequest
		if err := doc.DataTo(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (l *firestoreLedger) RecentDeliveries(ctx context.Context, limit int) ([]models.DeliveryRequest, error) {
	iterDocs, err := l.client.Collection(DeliveriesCollection).
		OrderBy("Timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	records := make([]models.DeliveryRequest, 0, len(iterDocs))
	for _, doc := range iterDocs {
		var record models.DeliveryRequest
		if err := doc.DataTo(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
