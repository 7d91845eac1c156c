// Chat-completion [Summarizer] implementation
//
// Submits one completion request per invocation to an OpenAI-compatible
// endpoint and returns the model's text verbatim. No retry, no streaming,
// no post-processing: whatever the model returns is the summary.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/lecx/internal/shared"
)

const defaultSummaryBaseURL string = "https://api.openai.com/v1/chat/completions"

// summaryPromptFormat combines the lecture title and transcript into the
// single instruction sent to the model.
const summaryPromptFormat = "Summarize the key points of the following lecture transcript into clear, concise bullet points. Make it easy to digest. Lecture Title: %s\n\nTranscript:\n%s"

// SummaryClient implements [Summarizer] over a chat-completions API.
type SummaryClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewSummaryClient creates a new chat-completion summarizer.
func NewSummaryClient(baseURL, apiKey, model string, client *http.Client) *SummaryClient {
	if baseURL == "" {
		baseURL = defaultSummaryBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &SummaryClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: client,
	}
}

// Name returns the service name.
func (s *SummaryClient) Name() string {
	return "Summarizer"
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize sends the combined title+transcript prompt as a single opaque
// completion turn. No conversation state is carried between calls.
func (s *SummaryClient) Summarize(ctx context.Context, title, transcript string) (string, error) {
	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(summaryPromptFormat, title, transcript)},
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", shared.ErrSummarizationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", shared.ErrSummarizationFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", shared.ErrSummarizationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", shared.ErrSummarizationFailed, err)
	}

	var completion chatCompletionResponse
	if jsonErr := json.Unmarshal(body, &completion); jsonErr == nil && completion.Error != nil && completion.Error.Message != "" {
		return "", fmt.Errorf("%w: completion API error (status %d): %s", shared.ErrSummarizationFailed, resp.StatusCode, completion.Error.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: completion API error: status %d: %s", shared.ErrSummarizationFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", shared.ErrSummarizationFailed)
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: completion returned empty content", shared.ErrSummarizationFailed)
	}

	return content, nil
}
