// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync/atomic"
	"testing"

	"github.com/desertthunder/lecx/internal/models"
)

// MockVideoService is a test double for [services.VideoService] that records
// how often it was called. The counter is atomic so concurrent pipeline tests
// can share one instance.
type MockVideoService struct {
	Video *models.VideoRef
	Err   error
	Calls atomic.Int64
}

func (m *MockVideoService) LatestVideo(ctx context.Context, playlistID string) (*models.VideoRef, error) {
	m.Calls.Add(1)
	return m.Video, m.Err
}

func (m *MockVideoService) Name() string { return "mock_video" }

// MockTranscriptService is a test double for [services.TranscriptService]
type MockTranscriptService struct {
	Text  string
	Err   error
	Calls atomic.Int64
}

func (m *MockTranscriptService) Transcript(ctx context.Context, videoID string) (string, error) {
	m.Calls.Add(1)
	return m.Text, m.Err
}

func (m *MockTranscriptService) Name() string { return "mock_transcript" }

// MockSummarizer is a test double for [services.Summarizer]
type MockSummarizer struct {
	Summary string
	Err     error
	Calls   atomic.Int64
}

func (m *MockSummarizer) Summarize(ctx context.Context, title, transcript string) (string, error) {
	m.Calls.Add(1)
	return m.Summary, m.Err
}

func (m *MockSummarizer) Name() string { return "mock_summarizer" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
