package sessionRepo

import (
	"context"
	"testing"

	"bizbuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	// Absent is distinct from empty.
	_, err := store.Get(ctx, "cust-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session := &models.Session{Service: "haircut", OfferedSlots: []string{"09:00", "10:00"}}
	require.NoError(t, store.Put(ctx, "cust-1", session))

	got, err := store.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// Put replaces wholesale.
	require.NoError(t, store.Put(ctx, "cust-1", &models.Session{Service: "massage", OfferedSlots: []string{"11:00"}}))
	got, err = store.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "massage", got.Service)
	assert.Equal(t, []string{"11:00"}, got.OfferedSlots)

	require.NoError(t, store.Delete(ctx, "cust-1"))
	_, err = store.Get(ctx, "cust-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "cust-2"))
}

func TestMemorySessionStoreCopiesSlots(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	session := &models.Session{Service: "haircut", OfferedSlots: []string{"09:00"}}
	require.NoError(t, store.Put(ctx, "cust-1", session))
	session.OfferedSlots[0] = "mutated"

	got, err := store.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, got.OfferedSlots)
}
