package sessionRepo

import (
	"context"
	"errors"

	"bizbuddy/models"
)

// ErrSessionNotFound is returned by Get when the customer has no pending
// session. Absence is distinct from an empty session.
var ErrSessionNotFound = errors.New("session not found")

// Store maps a customer's channel address to their pending booking session.
type Store interface {
	Get(ctx context.Context, customerID string) (*models.Session, error)
	Put(ctx context.Context, customerID string, session *models.Session) error
	Delete(ctx context.Context, customerID string) error
}
