package services

import (
	"context"

	"github.com/desertthunder/lecx/internal/models"
)

// VideoService resolves playlists against the video hosting service.
type VideoService interface {
	// LatestVideo returns the single most recently added item in the
	// playlist. Returns shared.ErrPlaylistEmpty for a valid playlist with
	// zero items and shared.ErrPlaylistNotFound when the identifier does
	// not resolve upstream.
	LatestVideo(ctx context.Context, playlistID string) (*models.VideoRef, error)

	// Name returns the service name for logging and diagnostics.
	Name() string
}

// TranscriptService resolves a video to its transcript text.
type TranscriptService interface {
	// Transcript returns the full transcript as one contiguous string with
	// fragments joined by single spaces in original order. Any failure is
	// reported as shared.ErrTranscriptUnavailable with detail.
	Transcript(ctx context.Context, videoID string) (string, error)

	Name() string
}

// Summarizer condenses a titled transcript via a language-model completion.
type Summarizer interface {
	// Summarize returns the model's response verbatim. Failures are
	// reported as shared.ErrSummarizationFailed with detail, never as
	// silent empty output.
	Summarize(ctx context.Context, title, transcript string) (string, error)

	Name() string
}
