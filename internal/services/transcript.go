// Transcript service [TranscriptService] implementation
//
// The transcript service carries no guaranteed schema version, so the client
// recognizes a closed list of three response shapes, probed in order:
//
//	(a) an object with a "transcript" array
//	(b) an object with a "captions" array
//	(c) a bare array of caption entries
//
// The first shape that accepts the payload wins; partial results from
// multiple shapes are never merged. Caption entries are either objects
// bearing a "text" field (timing metadata discarded) or bare strings.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/lecx/internal/shared"
)

const defaultTranscriptBaseURL string = "http://localhost:8080"

// TranscriptClient implements [TranscriptService] over a transcript HTTP service.
type TranscriptClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTranscriptClient creates a new transcript service client.
func NewTranscriptClient(baseURL string, client *http.Client) *TranscriptClient {
	if baseURL == "" {
		baseURL = defaultTranscriptBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &TranscriptClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns the service name.
func (t *TranscriptClient) Name() string {
	return "Transcript"
}

// Transcript fetches and normalizes the transcript for a video.
//
// Every failure collapses to [shared.ErrTranscriptUnavailable] wrapped with
// the original failure's category and message, so the caller can show the
// user an actionable diagnostic rather than a generic error.
func (t *TranscriptClient) Transcript(ctx context.Context, videoID string) (string, error) {
	apiURL := fmt.Sprintf("%s/transcripts/%s", t.baseURL, videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", shared.ErrTranscriptUnavailable, err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", shared.ErrTranscriptUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", shared.ErrTranscriptUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			return "", fmt.Errorf("%w: transcript API error (status %d): %s", shared.ErrTranscriptUnavailable, resp.StatusCode, errResp.Detail)
		}
		return "", fmt.Errorf("%w: transcript API error: status %d", shared.ErrTranscriptUnavailable, resp.StatusCode)
	}

	text, err := normalizeTranscript(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrTranscriptUnavailable, err)
	}

	return text, nil
}

// shapeRecognizer extracts the caption entry list from one known response
// shape, declining when the payload does not match.
type shapeRecognizer func(body []byte) ([]json.RawMessage, bool)

// transcriptShapes is the ordered, closed list of accepted response shapes.
// Order matters: the first recognizer that accepts the payload wins.
var transcriptShapes = []shapeRecognizer{
	shapeTranscriptField,
	shapeCaptionsField,
	shapeBareSequence,
}

// shapeTranscriptField recognizes {"transcript": [...]}.
func shapeTranscriptField(body []byte) ([]json.RawMessage, bool) {
	var payload struct {
		Transcript []json.RawMessage `json:"transcript"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Transcript == nil {
		return nil, false
	}
	return payload.Transcript, true
}

// shapeCaptionsField recognizes {"captions": [...]}.
func shapeCaptionsField(body []byte) ([]json.RawMessage, bool) {
	var payload struct {
		Captions []json.RawMessage `json:"captions"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Captions == nil {
		return nil, false
	}
	return payload.Captions, true
}

// shapeBareSequence recognizes a bare [...] of caption entries.
func shapeBareSequence(body []byte) ([]json.RawMessage, bool) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// normalizeTranscript probes the accepted shapes in order and joins the
// extracted text fragments with single spaces, preserving original order.
func normalizeTranscript(body []byte) (string, error) {
	for _, recognize := range transcriptShapes {
		entries, ok := recognize(body)
		if !ok {
			continue
		}
		return joinCaptionText(entries)
	}
	return "", fmt.Errorf("unrecognized transcript response shape")
}

// joinCaptionText extracts the spoken-text field from each caption entry.
//
// Entries are either objects with a "text" field or bare strings; timing
// metadata is discarded either way.
func joinCaptionText(entries []json.RawMessage) (string, error) {
	var sb strings.Builder
	for _, entry := range entries {
		text, err := captionText(entry)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("transcript contained no usable text fragments")
	}
	return sb.String(), nil
}

func captionText(entry json.RawMessage) (string, error) {
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(entry, &obj); err == nil {
		return obj.Text, nil
	}

	var text string
	if err := json.Unmarshal(entry, &text); err == nil {
		return text, nil
	}

	return "", fmt.Errorf("unrecognized caption entry: %s", string(entry))
}
