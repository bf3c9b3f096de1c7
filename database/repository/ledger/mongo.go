package ledgerRepo

import (
	"context"
	"time"

	"bizbuddy/database"
	"bizbuddy/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoLedger struct {
	bookings   *mongo.Collection
	callbacks  *mongo.Collection
	deliveries *mongo.Collection
}

// NewMongoLedger returns a Ledger backed by MongoDB collections.
func NewMongoLedger() Ledger {
	db := database.MongoClient.Database("bizbuddy")
	return &mongoLedger{
		bookings:   db.Collection(BookingsCollection),
		callbacks:  db.Collection(CallbacksCollection),
		deliveries: db.Collection(DeliveriesCollection),
	}
}

func (l *mongoLedger) AppendBooking(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = time.Now()

	_, err := l.bookings.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

func (l *mongoLedger) AppendCallback(ctx context.Context, record models.CallbackRequest) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = time.Now()

	_, err := l.callbacks.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

func (l *mongoLedger) AppendDelivery(ctx context.Context, record models.DeliveryRequest) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.Timestamp = time.Now()

	_, err := l.deliveries.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

func (l *mongoLedger) BookingsByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := l.bookings.Find(ctx, bson.M{"customer": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (l *mongoLedger) RecentCallbacks(ctx context.Context, limit int) ([]models.CallbackRequest, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(int64(limit))
	cursor, err := l.callbacks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.CallbackRequest
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (l *mongoLedger) RecentDeliveries(ctx context.Context, limit int) ([]models.DeliveryRequest, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(int64(limit))
	cursor, err := l.deliveries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.DeliveryRequest
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
