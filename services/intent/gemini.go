// File: services/intent/gemini.go
package intent

import (
	"context"
	"fmt"
	"strings"

	"bizbuddy/models"
	"bizbuddy/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const classifierPrompt = `You are an AI assistant for a WhatsApp business bot. Read the user's message and return a valid JSON response that matches one of these intents:

INTENTS:
- BOOK: User wants to book a service (e.g. haircut, massage)
- RESCHEDULE: User wants to reschedule an existing booking
- CALLBACK: User asks for a call back
- DELIVERY_REQUEST: User wants a delivery
- FAQ: User is asking a general question

Return this format:
{
  "intent": "BOOK",
  "service": "haircut",
  "time": "5:00 PM"
}

Rules:
- If service or time is missing, use "null"
- Only return the JSON. No explanation, no extra text.

Examples:
- "Can I get a haircut tomorrow at 4pm?" -> {"intent": "BOOK", "service": "haircut", "time": "4:00 PM"}
- "I want to book a massage" -> {"intent": "BOOK", "service": "massage", "time": null}
- "Do you deliver cat food?" -> {"intent": "DELIVERY_REQUEST", "service": null, "time": null}

User message:
`

// GeminiClassifier asks Gemini for an intent guess.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey, modelName string) *GeminiClassifier {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	return &GeminiClassifier{model: model}
}

// Classify sends the message to Gemini once; it never retries and never
// propagates failure, returning UNKNOWN instead.
func (g *GeminiClassifier) Classify(ctx context.Context, text string) models.ClassifiedIntent {
	logger := utils.GetLogger()

	resp, err := g.model.GenerateContent(ctx, genai.Text(classifierPrompt+text))
	if err != nil {
		logger.Warn("gemini classify failed", zap.Error(err))
		return models.ClassifiedIntent{Intent: models.IntentUnknown}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		logger.Warn("gemini classify returned no candidates")
		return models.ClassifiedIntent{Intent: models.IntentUnknown}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	out, ok := parseIntentJSON(sb.String())
	if !ok {
		logger.Warn("gemini classify returned unparseable output", zap.String("raw", sb.String()))
	}
	return out
}
