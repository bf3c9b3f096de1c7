// File: services/conversation/engine.go
package conversation

import (
	"context"
	"errors"
	"strings"

	ledgerRepo "bizbuddy/database/repository/ledger"
	sessionRepo "bizbuddy/database/repository/session"
	"bizbuddy/models"
	"bizbuddy/services/intent"
	"bizbuddy/services/tasks"
	"bizbuddy/utils"

	"go.uber.org/zap"
)

// Engine is the per-message state machine: one inbound message in, one reply
// out, with at most one session transition and one ledger append along the
// way. It keeps no state of its own between calls; everything lives in the
// session store and the ledger.
type Engine struct {
	Business   *models.BusinessConfig
	Sessions   sessionRepo.Store
	Ledger     ledgerRepo.Ledger
	Classifier intent.Classifier
	Reminders  *tasks.ReminderScheduler // optional; nil disables reminders
}

// Handle processes one inbound message and always returns a non-empty reply.
// Collaborator failures (store or ledger errors) are contained here: the
// customer gets a generic apology and the fault goes to the log, never to the
// channel.
func (e *Engine) Handle(ctx context.Context, customerID, rawMessage string) string {
	reply, err := e.handle(ctx, customerID, rawMessage)
	if err != nil {
		utils.GetLogger().Error("message handling failed",
			zap.String("customer", customerID),
			zap.Error(err))
		return replyApology
	}
	return reply
}

func (e *Engine) handle(ctx context.Context, customerID, rawMessage string) (string, error) {
	trimmed := strings.TrimSpace(rawMessage)
	// Lowercase for command matching only.
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "book "):
		return e.handleBook(ctx, customerID, lower)
	case strings.HasPrefix(lower, "confirm "):
		return e.handleConfirm(ctx, customerID, strings.TrimSpace(trimmed[len("confirm "):]))
	default:
		return e.handleFreeform(ctx, customerID, rawMessage)
	}
}

// handleBook starts (or silently restarts) a booking session.
func (e *Engine) handleBook(ctx context.Context, customerID, lower string) (string, error) {
	service := strings.Fields(lower)[1]

	duration, ok := e.Business.Services[service]
	if !ok {
		return replyUnknownService(service, e.Business.ServiceNames()), nil
	}

	slots := ComputeSlots(duration, e.Business.Hours)
	session := &models.Session{Service: service, OfferedSlots: slots}
	// A fresh book overwrites any prior session, no warning.
	if err := e.Sessions.Put(ctx, customerID, session); err != nil {
		return "", err
	}
	return replySlots(service, slots), nil
}

// handleConfirm closes the pending session if the requested slot was offered.
func (e *Engine) handleConfirm(ctx context.Context, customerID, rawTime string) (string, error) {
	token := NormalizeTime(rawTime)

	session, err := e.Sessions.Get(ctx, customerID)
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return replyNoSession(), nil
	}
	if err != nil {
		return "", err
	}

	if !session.Offered(token) {
		return replySlotUnavailable(session.OfferedSlots), nil
	}

	record := models.BookingRecord{
		Customer: customerID,
		Service:  session.Service,
		Time:     token,
	}
	if _, err := e.Ledger.AppendBooking(ctx, record); err != nil {
		return "", err
	}
	if err := e.Sessions.Delete(ctx, customerID); err != nil {
		return "", err
	}

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleBookingReminder(record); err != nil {
			// Reminders are best-effort; the booking already stands.
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("customer", customerID),
				zap.Error(err))
		}
	}

	return replyConfirmed(session.Service, token), nil
}

// handleFreeform routes anything that is not a strict command through the
// classifier. Every classifier field is untrusted: service may be outside the
// catalog, time may be raw text, intent may be a value we've never seen.
func (e *Engine) handleFreeform(ctx context.Context, customerID, rawMessage string) (string, error) {
	guess := e.Classifier.Classify(ctx, rawMessage)

	switch guess.Intent {
	case models.IntentBook:
		if guess.Service == "" {
			return replyAskService(e.Business.ServiceNames()), nil
		}
		if guess.Time == "" {
			return replyAskTime(guess.Service), nil
		}
		// Never auto-book off a classifier guess; the strict command path is
		// the single source of truth for slot computation.
		return replyUseBookCommand(guess.Service), nil

	case models.IntentReschedule:
		return replyReschedule(), nil

	case models.IntentCallback:
		record := models.CallbackRequest{Customer: customerID, Message: rawMessage}
		if _, err := e.Ledger.AppendCallback(ctx, record); err != nil {
			return "", err
		}
		return replyCallbackAck(), nil

	case models.IntentDelivery:
		record := models.DeliveryRequest{Customer: customerID, Details: rawMessage}
		if _, err := e.Ledger.AppendDelivery(ctx, record); err != nil {
			return "", err
		}
		return replyDeliveryAck(), nil

	case models.IntentFAQ:
		return replyFAQ(), nil

	default:
		return replyUnknown(e.Business.ServiceNames()), nil
	}
}
