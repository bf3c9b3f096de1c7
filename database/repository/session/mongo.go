package sessionRepo

import (
	"context"
	"errors"

	"bizbuddy/database"
	"bizbuddy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sessionDoc struct {
	Customer string         `bson:"customer"`
	Session  models.Session `bson:"session"`
}

type mongoSessionStore struct {
	coll *mongo.Collection
}

// NewMongoSessionStore returns a Store backed by the "sessions" collection.
func NewMongoSessionStore() Store {
	db := database.MongoClient.Database("bizbuddy")
	return &mongoSessionStore{coll: db.Collection("sessions")}
}

func (s *mongoSessionStore) Get(ctx context.Context, customerID string) (*models.Session, error) {
	var doc sessionDoc
	err := s.coll.FindOne(ctx, bson.M{"customer": customerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc.Session, nil
}

func (s *mongoSessionStore) Put(ctx context.Context, customerID string, session *models.Session) error {
	doc := sessionDoc{Customer: customerID, Session: *session}
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"customer": customerID}, doc, opts)
	return err
}

func (s *mongoSessionStore) Delete(ctx context.Context, customerID string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"customer": customerID})
	return err
}
