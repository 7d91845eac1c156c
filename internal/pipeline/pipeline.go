package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lecx/internal/models"
	"github.com/desertthunder/lecx/internal/services"
	"github.com/desertthunder/lecx/internal/shared"
	"github.com/desertthunder/lecx/internal/store"
)

// Status is the terminal state of one pipeline run.
type Status int

const (
	StatusSummarized Status = iota
	StatusNotConfigured
	StatusPlaylistEmpty
	StatusLookupFailed
	StatusTranscriptFailed
	StatusSummarizeFailed
	StatusCacheFailed
)

func (s Status) String() string {
	switch s {
	case StatusSummarized:
		return "summarized"
	case StatusNotConfigured:
		return "not_configured"
	case StatusPlaylistEmpty:
		return "playlist_empty"
	case StatusLookupFailed:
		return "lookup_failed"
	case StatusTranscriptFailed:
		return "transcript_failed"
	case StatusSummarizeFailed:
		return "summarization_failed"
	case StatusCacheFailed:
		return "cache_failed"
	default:
		return ""
	}
}

// Outcome is the tagged result of one pipeline run.
//
// Exactly one Status is set and failures always identify the stage that
// produced them. VideoTitle and VideoURL are populated from stage 2 onward,
// so a transcript failure still hands the caller a usable link.
type Outcome struct {
	Status     Status
	Subject    string
	VideoTitle string
	VideoURL   string
	Summary    string
	Detail     string // upstream failure detail, empty on success
	Err        error  // classified error, nil on success
}

// Success reports whether the run reached the cache-committed state.
func (o *Outcome) Success() bool {
	return o.Status == StatusSummarized
}

// Engine runs the retrieval-summarization sequence against injected
// collaborators.
type Engine struct {
	store       store.SubjectStore
	video       services.VideoService
	transcripts services.TranscriptService
	summarizer  services.Summarizer
	logger      *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEngine creates an Engine with the provided store and services.
func NewEngine(st store.SubjectStore, video services.VideoService, transcripts services.TranscriptService, summarizer services.Summarizer, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{
		store:       st,
		video:       video,
		transcripts: transcripts,
		summarizer:  summarizer,
		logger:      logger,
		locks:       make(map[string]*sync.Mutex),
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default so progress reporting never stalls a run.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// subjectLock returns the mutex serializing runs for one (user, subject)
// pair, creating it on first use.
func (e *Engine) subjectLock(userID, name string) *sync.Mutex {
	key := userID + "\x00" + name

	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[key] = lock
	}
	return lock
}

// Run executes the full sequence for one (user, subject) trigger and returns
// its terminal outcome. Stages run strictly sequentially; each of stages 2-4
// performs one blocking upstream call with no retry.
func (e *Engine) Run(ctx context.Context, userID, subjectName string, progress chan<- ProgressUpdate) *Outcome {
	name := shared.NormalizeSubjectName(subjectName)
	outcome := &Outcome{Subject: name}

	runLogger := e.logger.With("run", shared.GenerateID(), "user", userID, "subject", name)

	lock := e.subjectLock(userID, name)
	lock.Lock()
	defer lock.Unlock()

	// Stage 1: the subject must exist and have a linked playlist. No
	// network call is made before this gate passes.
	subject, err := e.store.GetSubject(userID, name)
	if err != nil {
		runLogger.Warn("subject not registered")
		outcome.Status = StatusNotConfigured
		outcome.Detail = err.Error()
		outcome.Err = err
		return outcome
	}
	if !subject.Linked() {
		runLogger.Warn("subject has no linked playlist")
		outcome.Status = StatusNotConfigured
		outcome.Err = fmt.Errorf("%w: %s", shared.ErrPlaylistNotLinked, name)
		outcome.Detail = outcome.Err.Error()
		return outcome
	}

	// Stage 2: resolve the newest playlist item.
	e.sendProgress(progress, resolvingVideoUpdate())
	video, err := e.video.LatestVideo(ctx, subject.PlaylistID)
	if err != nil {
		runLogger.Error("video lookup failed", "playlist", subject.PlaylistID, "err", err)
		if errors.Is(err, shared.ErrPlaylistEmpty) {
			outcome.Status = StatusPlaylistEmpty
		} else {
			outcome.Status = StatusLookupFailed
		}
		outcome.Detail = err.Error()
		outcome.Err = err
		return outcome
	}

	outcome.VideoTitle = video.Title
	outcome.VideoURL = video.URL
	runLogger.Info("resolved latest video", "video", video.VideoID, "title", video.Title)

	// Stage 3: fetch the transcript. On failure the video URL stays on the
	// outcome: the link is useful to the user even without a summary.
	e.sendProgress(progress, fetchingTranscriptUpdate(video))
	transcript, err := e.transcripts.Transcript(ctx, video.VideoID)
	if err != nil {
		runLogger.Error("transcript fetch failed", "video", video.VideoID, "err", err)
		outcome.Status = StatusTranscriptFailed
		outcome.Detail = err.Error()
		outcome.Err = err
		return outcome
	}

	// Stage 4: summarize.
	e.sendProgress(progress, summarizingUpdate(video))
	summary, err := e.summarizer.Summarize(ctx, video.Title, transcript)
	if err != nil {
		runLogger.Error("summarization failed", "video", video.VideoID, "err", err)
		outcome.Status = StatusSummarizeFailed
		outcome.Detail = err.Error()
		outcome.Err = err
		return outcome
	}

	// Stage 5: commit the cache entry. Overwrites any prior lecture for
	// this subject.
	e.sendProgress(progress, committingUpdate(video))
	cache := models.LectureCache{
		VideoTitle: video.Title,
		Transcript: transcript,
		Summary:    summary,
	}
	if err := e.store.WriteCache(userID, name, cache); err != nil {
		runLogger.Error("cache write failed", "err", err)
		outcome.Status = StatusCacheFailed
		outcome.Detail = err.Error()
		outcome.Err = err
		return outcome
	}

	runLogger.Info("lecture summarized", "title", video.Title)
	outcome.Status = StatusSummarized
	outcome.Summary = summary
	return outcome
}
