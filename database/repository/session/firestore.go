package sessionRepo

import (
	"context"

	"bizbuddy/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const sessionsCollection = "sessions"

type firestoreSessionStore struct {
	client *firestore.Client
}

// NewFirestoreSessionStore returns a Store backed by a Firestore "sessions"
// collection, one document per customer.
func NewFirestoreSessionStore(client *firestore.Client) Store {
	return &firestoreSessionStore{client: client}
}

func (s *firestoreSessionStore) Get(ctx context.Context, customerID string) (*models.Session, error) {
	snap, err := s.client.Collection(sessionsCollection).Doc(customerID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := snap.DataTo(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *firestoreSessionStore) Put(ctx context.Context, customerID string, session *models.Session) error {
	_, err := s.client.Collection(sessionsCollection).Doc(customerID).Set(ctx, session)
	return err
}

func (s *firestoreSessionStore) Delete(ctx context.Context, customerID string) error {
	_, err := s.client.Collection(sessionsCollection).Doc(customerID).Delete(ctx)
	return err
}
