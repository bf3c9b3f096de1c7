// File: handlers/webhook.go
package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"bizbuddy/services/conversation"
	"bizbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// twimlResponse is the channel's reply envelope. The engine only ever emits
// plain text; the markup lives entirely here.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// WebhookHandler receives inbound channel messages and replies inline.
type WebhookHandler struct {
	engine      *conversation.Engine
	transcriber *Transcriber // optional; nil disables voice notes
}

func NewWebhookHandler(engine *conversation.Engine, transcriber *Transcriber) *WebhookHandler {
	return &WebhookHandler{engine: engine, transcriber: transcriber}
}

// HandleInbound processes one webhook POST. The channel retries non-200
// responses, so this always answers 200 with a message body, even when the
// engine had to fall back to an apology.
func (h *WebhookHandler) HandleInbound(c *gin.Context) {
	logger := utils.GetLogger()

	from := c.PostForm("From")
	body := c.PostForm("Body")

	if from == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid webhook payload", "missing From field")
		return
	}

	// Voice note: no text body, one audio attachment.
	if strings.TrimSpace(body) == "" && h.transcriber != nil {
		if mediaURL, contentType, ok := audioAttachment(c); ok {
			transcript, err := h.transcriber.TranscribeURL(c.Request.Context(), mediaURL, contentType)
			if err != nil {
				// A failed transcription is the customer's "didn't understand",
				// not a system fault.
				logger.Warn("voice note transcription failed",
					zap.String("customer", from),
					zap.Error(err))
			} else {
				body = transcript
			}
		}
	}

	reply := h.engine.Handle(c.Request.Context(), from, body)

	out, err := xml.Marshal(twimlResponse{Message: reply})
	if err != nil {
		logger.Error("failed to encode reply", zap.Error(err))
		c.String(http.StatusInternalServerError, "encoding error")
		return
	}
	c.Data(http.StatusOK, "text/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

func audioAttachment(c *gin.Context) (mediaURL, contentType string, ok bool) {
	if c.PostForm("NumMedia") == "" || c.PostForm("NumMedia") == "0" {
		return "", "", false
	}
	mediaURL = c.PostForm("MediaUrl0")
	contentType = c.PostForm("MediaContentType0")
	if mediaURL == "" || !strings.HasPrefix(contentType, "audio/") {
		return "", "", false
	}
	return mediaURL, contentType, true
}
