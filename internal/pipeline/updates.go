package pipeline

import (
	"fmt"

	"github.com/desertthunder/lecx/internal/models"
)

// ProgressUpdate represents a progress event during a pipeline run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Pipeline stage
	Message string // Human-readable message for display
	Data    any    // Optional stage-specific data
}

// Operation phase enumeration
type Phase int

const (
	ResolveVideo Phase = iota
	FetchTranscript
	Summarize
	CommitCache
)

func (p Phase) String() string {
	switch p {
	case ResolveVideo:
		return "resolve_video"
	case FetchTranscript:
		return "fetch_transcript"
	case Summarize:
		return "summarize"
	case CommitCache:
		return "commit_cache"
	default:
		return ""
	}
}

func resolvingVideoUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveVideo,
		Message: "Checking the playlist for the latest lecture...",
	}
}

func fetchingTranscriptUpdate(video *models.VideoRef) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTranscript,
		Message: fmt.Sprintf("Found it: %s. Grabbing the transcript now...", video.Title),
		Data:    video,
	}
}

func summarizingUpdate(video *models.VideoRef) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Message: "Transcript acquired. Summarizing, this can take a moment...",
		Data:    video,
	}
}

func committingUpdate(video *models.VideoRef) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CommitCache,
		Message: fmt.Sprintf("Caching summary for: %s", video.Title),
		Data:    video,
	}
}
