// File: handlers/voice.go
package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bizbuddy/config"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const (
	// Voice notes are short; cap downloads well below channel limits.
	maxVoiceNoteBytes = 5 * 1024 * 1024
)

// mediaHTTPClient fetches voice-note media from the channel's CDN.
var mediaHTTPClient = &http.Client{Timeout: 15 * time.Second}

// Transcriber converts voice-note audio into text via Google Speech-to-Text.
type Transcriber struct {
	language string
}

func NewTranscriber(language string) *Transcriber {
	if language == "" {
		language = "en-US"
	}
	return &Transcriber{language: language}
}

// TranscribeURL downloads the media and runs one synchronous recognition.
func (t *Transcriber) TranscribeURL(ctx context.Context, mediaURL, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := mediaHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch media: unexpected status %d", resp.StatusCode)
	}

	audioData, err := io.ReadAll(io.LimitReader(resp.Body, maxVoiceNoteBytes))
	if err != nil {
		return "", fmt.Errorf("read media: %w", err)
	}

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		return "", fmt.Errorf("speech client: %w", err)
	}
	defer client.Close()

	recognize := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        encodingFor(contentType),
			SampleRateHertz: 16000,
			LanguageCode:    t.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	result, err := client.Recognize(ctx, recognize)
	if err != nil {
		return "", fmt.Errorf("speech recognition: %w", err)
	}

	var transcript strings.Builder
	for _, res := range result.Results {
		for _, alt := range res.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}

// encodingFor maps the channel's media content type to a recognition
// encoding. WhatsApp voice notes arrive as OGG Opus.
func encodingFor(contentType string) speechpb.RecognitionConfig_AudioEncoding {
	switch {
	case strings.Contains(contentType, "ogg"):
		return speechpb.RecognitionConfig_OGG_OPUS
	case strings.Contains(contentType, "amr"):
		return speechpb.RecognitionConfig_AMR_WB
	default:
		return speechpb.RecognitionConfig_LINEAR16
	}
}
