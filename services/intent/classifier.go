// File: services/intent/classifier.go
package intent

import (
	"context"
	"encoding/json"
	"strings"

	"bizbuddy/models"
)

// Classifier turns free text into a best-effort structured intent guess.
// Implementations never return an error: any internal failure degrades to
// {intent: UNKNOWN} so one bad classification cannot abort a conversation.
type Classifier interface {
	Classify(ctx context.Context, text string) models.ClassifiedIntent
}

// parseIntentJSON extracts the intent object from a raw model response. The
// model is asked for bare JSON but tends to wrap it in markdown fences or
// prose, so we cut from the first '{' to the last '}' before unmarshalling.
func parseIntentJSON(raw string) (models.ClassifiedIntent, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return models.ClassifiedIntent{Intent: models.IntentUnknown}, false
	}

	var out models.ClassifiedIntent
	if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err != nil {
		return models.ClassifiedIntent{Intent: models.IntentUnknown}, false
	}

	out.Intent = strings.ToUpper(strings.TrimSpace(out.Intent))
	if out.Intent == "" {
		out.Intent = models.IntentUnknown
	}
	// The prompt tells the model to use the string "null" for absent fields.
	out.Service = cleanField(out.Service)
	out.Time = cleanField(out.Time)
	return out, true
}

func cleanField(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}
