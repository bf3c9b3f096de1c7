// File: services/intent/keyword.go
package intent

import (
	"context"
	"strings"

	"bizbuddy/models"
)

// KeywordClassifier is the keyless fallback: plain keyword matching over the
// message plus the business catalog. Much weaker than the model, but it keeps
// the conversational path alive in deployments without an API key.
type KeywordClassifier struct {
	services []string
}

func NewKeywordClassifier(serviceNames []string) *KeywordClassifier {
	return &KeywordClassifier{services: serviceNames}
}

func (k *KeywordClassifier) Classify(ctx context.Context, text string) models.ClassifiedIntent {
	lowerText := strings.ToLower(text)

	var out models.ClassifiedIntent
	switch {
	case strings.Contains(lowerText, "resched"):
		out.Intent = models.IntentReschedule
	case strings.Contains(lowerText, "call me") || strings.Contains(lowerText, "call back") || strings.Contains(lowerText, "callback"):
		out.Intent = models.IntentCallback
	case strings.Contains(lowerText, "deliver"):
		out.Intent = models.IntentDelivery
	case strings.Contains(lowerText, "book") || strings.Contains(lowerText, "appointment") || strings.Contains(lowerText, "schedule"):
		out.Intent = models.IntentBook
	case strings.HasSuffix(strings.TrimSpace(lowerText), "?"):
		out.Intent = models.IntentFAQ
	default:
		out.Intent = models.IntentUnknown
	}

	// Match service by catalog name.
	for _, svc := range k.services {
		if strings.Contains(lowerText, strings.ToLower(svc)) {
			out.Service = svc
			break
		}
	}

	return out
}
