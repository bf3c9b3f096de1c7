package conversation

import (
	"context"
	"errors"
	"testing"

	ledgerRepo "bizbuddy/database/repository/ledger"
	sessionRepo "bizbuddy/database/repository/session"
	"bizbuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customer = "whatsapp:+15550001111"

// stubClassifier returns a canned intent; Calls counts invocations so tests
// can assert the classifier is skipped on strict commands.
type stubClassifier struct {
	result models.ClassifiedIntent
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) models.ClassifiedIntent {
	s.calls++
	return s.result
}

// failingSessionStore errors on every operation.
type failingSessionStore struct{}

func (failingSessionStore) Get(ctx context.Context, customerID string) (*models.Session, error) {
	return nil, errors.New("store unavailable")
}

func (failingSessionStore) Put(ctx context.Context, customerID string, session *models.Session) error {
	return errors.New("store unavailable")
}

func (failingSessionStore) Delete(ctx context.Context, customerID string) error {
	return errors.New("store unavailable")
}

func testBusiness() *models.BusinessConfig {
	return &models.BusinessConfig{
		Services: map[string]int{"haircut": 30, "massage": 60},
		Hours:    models.BusinessHours{Start: 9, End: 17},
	}
}

func newTestEngine(classifier *stubClassifier) (*Engine, sessionRepo.Store, *ledgerRepo.MemoryLedger) {
	sessions := sessionRepo.NewMemorySessionStore()
	ledger := ledgerRepo.NewMemoryLedger()
	engine := &Engine{
		Business:   testBusiness(),
		Sessions:   sessions,
		Ledger:     ledger,
		Classifier: classifier,
	}
	return engine, sessions, ledger
}

func TestBookingHappyPath(t *testing.T) {
	ctx := context.Background()
	classifier := &stubClassifier{}
	engine, sessions, ledger := newTestEngine(classifier)

	reply := engine.Handle(ctx, customer, "book haircut")
	assert.Contains(t, reply, "09:00")
	assert.Contains(t, reply, "confirm")

	session, err := sessions.Get(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "haircut", session.Service)
	assert.Contains(t, session.OfferedSlots, "09:00")

	reply = engine.Handle(ctx, customer, "confirm 9:00")
	assert.Contains(t, reply, "haircut")
	assert.Contains(t, reply, "09:00")

	require.Len(t, ledger.Bookings, 1)
	record := ledger.Bookings[0]
	assert.Equal(t, customer, record.Customer)
	assert.Equal(t, "haircut", record.Service)
	assert.Equal(t, "09:00", record.Time)
	assert.False(t, record.Timestamp.IsZero())

	_, err = sessions.Get(ctx, customer)
	assert.ErrorIs(t, err, sessionRepo.ErrSessionNotFound)

	// Strict commands never reach the classifier.
	assert.Zero(t, classifier.calls)
}

func TestBookCommandIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	engine, sessions, _ := newTestEngine(&stubClassifier{})

	engine.Handle(ctx, customer, "  BOOK Haircut ")
	session, err := sessions.Get(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "haircut", session.Service)
}

func TestConfirmNormalizesLooseTimes(t *testing.T) {
	ctx := context.Background()
	engine, _, ledger := newTestEngine(&stubClassifier{})

	engine.Handle(ctx, customer, "book haircut")
	reply := engine.Handle(ctx, customer, "confirm 9am")
	assert.Contains(t, reply, "confirmed")
	require.Len(t, ledger.Bookings, 1)
	assert.Equal(t, "09:00", ledger.Bookings[0].Time)
}

func TestUnknownServiceLeavesNoSession(t *testing.T) {
	ctx := context.Background()
	engine, sessions, ledger := newTestEngine(&stubClassifier{})

	reply := engine.Handle(ctx, customer, "book flying")
	assert.Contains(t, reply, "flying")
	assert.Contains(t, reply, "haircut")
	assert.Contains(t, reply, "massage")

	_, err := sessions.Get(ctx, customer)
	assert.ErrorIs(t, err, sessionRepo.ErrSessionNotFound)
	assert.Empty(t, ledger.Bookings)
}

func TestConfirmWithoutSession(t *testing.T) {
	ctx := context.Background()
	engine, _, ledger := newTestEngine(&stubClassifier{})

	reply := engine.Handle(ctx, customer, "confirm 9:00")
	assert.Contains(t, reply, "book")
	assert.Empty(t, ledger.Bookings)
}

func TestConfirmUnofferedSlot(t *testing.T) {
	ctx := context.Background()
	engine, sessions, ledger := newTestEngine(&stubClassifier{})

	engine.Handle(ctx, customer, "book haircut")
	reply := engine.Handle(ctx, customer, "confirm 23:00")
	assert.Contains(t, reply, "isn't available")
	assert.Empty(t, ledger.Bookings)

	// Session survives a failed confirm.
	_, err := sessions.Get(ctx, customer)
	assert.NoError(t, err)
}

func TestRepeatedBookOverwritesSession(t *testing.T) {
	ctx := context.Background()
	engine, sessions, _ := newTestEngine(&stubClassifier{})

	engine.Handle(ctx, customer, "book haircut")
	engine.Handle(ctx, customer, "book massage")

	session, err := sessions.Get(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "massage", session.Service)
}

func TestClassifierCallbackRouting(t *testing.T) {
	ctx := context.Background()
	classifier := &stubClassifier{result: models.ClassifiedIntent{Intent: models.IntentCallback}}
	engine, _, ledger := newTestEngine(classifier)

	original := "Could someone ring me about my order?"
	reply := engine.Handle(ctx, customer, original)
	assert.NotEmpty(t, reply)

	require.Len(t, ledger.Callbacks, 1)
	assert.Equal(t, customer, ledger.Callbacks[0].Customer)
	assert.Equal(t, original, ledger.Callbacks[0].Message)
	assert.Equal(t, 1, classifier.calls)
}

func TestClassifierDeliveryRouting(t *testing.T) {
	ctx := context.Background()
	classifier := &stubClassifier{result: models.ClassifiedIntent{Intent: models.IntentDelivery}}
	engine, _, ledger := newTestEngine(classifier)

	original := "Do you deliver cat food?"
	engine.Handle(ctx, customer, original)

	require.Len(t, ledger.Deliveries, 1)
	assert.Equal(t, original, ledger.Deliveries[0].Details)
}

func TestClassifierUnknownWritesNothing(t *testing.T) {
	ctx := context.Background()
	classifier := &stubClassifier{result: models.ClassifiedIntent{Intent: models.IntentUnknown}}
	engine, _, ledger := newTestEngine(classifier)

	reply := engine.Handle(ctx, customer, "asdfghjkl")
	assert.NotEmpty(t, reply)
	assert.Empty(t, ledger.Bookings)
	assert.Empty(t, ledger.Callbacks)
	assert.Empty(t, ledger.Deliveries)
}

func TestClassifierUnrecognizedIntentTreatedAsUnknown(t *testing.T) {
	ctx := context.Background()
	classifier := &stubClassifier{result: models.ClassifiedIntent{Intent: "TELEPORT"}}
	engine, _, ledger := newTestEngine(classifier)

	reply := engine.Handle(ctx, customer, "beam me up")
	assert.Contains(t, reply, "didn't quite get that")
	assert.Empty(t, ledger.Callbacks)
}

func TestClassifierBookSlotFilling(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		result models.ClassifiedIntent
		want   string
	}{
		{
			name:   "missing service asks for one",
			result: models.ClassifiedIntent{Intent: models.IntentBook},
			want:   "Which service",
		},
		{
			name:   "missing time asks for one",
			result: models.ClassifiedIntent{Intent: models.IntentBook, Service: "haircut"},
			want:   "What time",
		},
		{
			name:   "complete guess is pointed at the strict command",
			result: models.ClassifiedIntent{Intent: models.IntentBook, Service: "haircut", Time: "4pm"},
			want:   `"book haircut"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, sessions, ledger := newTestEngine(&stubClassifier{result: tt.result})
			reply := engine.Handle(ctx, customer, "I'd like an appointment")
			assert.Contains(t, reply, tt.want)

			// The classifier path never books or creates sessions by itself.
			_, err := sessions.Get(ctx, customer)
			assert.ErrorIs(t, err, sessionRepo.ErrSessionNotFound)
			assert.Empty(t, ledger.Bookings)
		})
	}
}

func TestRescheduleAndFAQReplies(t *testing.T) {
	ctx := context.Background()

	engine, _, ledger := newTestEngine(&stubClassifier{result: models.ClassifiedIntent{Intent: models.IntentReschedule}})
	assert.Contains(t, engine.Handle(ctx, customer, "can I move my appointment"), "book")
	assert.Empty(t, ledger.Bookings)

	engine, _, _ = newTestEngine(&stubClassifier{result: models.ClassifiedIntent{Intent: models.IntentFAQ}})
	assert.NotEmpty(t, engine.Handle(ctx, customer, "what are your opening hours?"))
}

func TestErrorContainment(t *testing.T) {
	ctx := context.Background()
	engine := &Engine{
		Business:   testBusiness(),
		Sessions:   failingSessionStore{},
		Ledger:     ledgerRepo.NewMemoryLedger(),
		Classifier: &stubClassifier{},
	}

	// Failing Get on confirm and failing Put on book both surface as a
	// non-empty apology, never as a propagated error.
	reply := engine.Handle(ctx, customer, "confirm 9:00")
	assert.Equal(t, replyApology, reply)

	reply = engine.Handle(ctx, customer, "book haircut")
	assert.Equal(t, replyApology, reply)
}

func TestReplyNeverEmpty(t *testing.T) {
	ctx := context.Background()
	engine, _, _ := newTestEngine(&stubClassifier{result: models.ClassifiedIntent{Intent: models.IntentUnknown}})

	for _, msg := range []string{"", "book haircut", "confirm 9:00", "confirm nonsense", "hello there"} {
		assert.NotEmpty(t, engine.Handle(ctx, customer, msg), "message %q", msg)
	}
}
