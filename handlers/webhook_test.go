package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	ledgerRepo "bizbuddy/database/repository/ledger"
	sessionRepo "bizbuddy/database/repository/session"
	"bizbuddy/models"
	"bizbuddy/services/conversation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownClassifier struct{}

func (unknownClassifier) Classify(ctx context.Context, text string) models.ClassifiedIntent {
	return models.ClassifiedIntent{Intent: models.IntentUnknown}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := &conversation.Engine{
		Business: &models.BusinessConfig{
			Services: map[string]int{"haircut": 30},
			Hours:    models.BusinessHours{Start: 9, End: 17},
		},
		Sessions:   sessionRepo.NewMemorySessionStore(),
		Ledger:     ledgerRepo.NewMemoryLedger(),
		Classifier: unknownClassifier{},
	}

	router := gin.New()
	router.POST("/webhook", NewWebhookHandler(engine, nil).HandleInbound)
	return router
}

func postWebhook(t *testing.T, router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookRepliesWithTwiML(t *testing.T) {
	router := newTestRouter()

	w := postWebhook(t, router, url.Values{
		"From": {"whatsapp:+15550001111"},
		"Body": {"book haircut"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")

	body := w.Body.String()
	assert.Contains(t, body, "<Response>")
	assert.Contains(t, body, "<Message>")
	assert.Contains(t, body, "09:00")
}

func TestWebhookRejectsMissingSender(t *testing.T) {
	router := newTestRouter()

	w := postWebhook(t, router, url.Values{"Body": {"book haircut"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookAlwaysAnswersFreeform(t *testing.T) {
	router := newTestRouter()

	w := postWebhook(t, router, url.Values{
		"From": {"whatsapp:+15550001111"},
		"Body": {"hello there"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Message>")
}
