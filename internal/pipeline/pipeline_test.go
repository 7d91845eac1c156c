package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/desertthunder/lecx/internal/models"
	"github.com/desertthunder/lecx/internal/shared"
	"github.com/desertthunder/lecx/internal/store"
	tu "github.com/desertthunder/lecx/internal/testing"
)

func newTestEngine(st store.SubjectStore, video *tu.MockVideoService, transcript *tu.MockTranscriptService, summarizer *tu.MockSummarizer) *Engine {
	return NewEngine(st, video, transcript, summarizer, nil)
}

func registeredStore(t *testing.T, userID, name, playlistID string) store.SubjectStore {
	t.Helper()
	s := store.NewMemoryStore()
	if _, err := s.Register(userID, name); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if playlistID != "" {
		if err := s.LinkPlaylist(userID, name, playlistID); err != nil {
			t.Fatalf("LinkPlaylist failed: %v", err)
		}
	}
	return s
}

func TestEngineRun(t *testing.T) {
	lectureVideo := &models.VideoRef{
		VideoID: "vid123",
		Title:   "Lecture 9: Hashing",
		URL:     "https://www.youtube.com/watch?v=vid123",
	}

	t.Run("unregistered subject short-circuits before any upstream call", func(t *testing.T) {
		video := &tu.MockVideoService{}
		transcript := &tu.MockTranscriptService{}
		summarizer := &tu.MockSummarizer{}
		engine := newTestEngine(store.NewMemoryStore(), video, transcript, summarizer)

		outcome := engine.Run(context.Background(), "u1", "ghost", nil)

		if outcome.Status != StatusNotConfigured {
			t.Errorf("expected not_configured, got %s", outcome.Status)
		}
		if video.Calls.Load() != 0 || transcript.Calls.Load() != 0 || summarizer.Calls.Load() != 0 {
			t.Errorf("expected zero upstream calls, got %d/%d/%d", video.Calls.Load(), transcript.Calls.Load(), summarizer.Calls.Load())
		}
	})

	t.Run("unlinked subject short-circuits before any upstream call", func(t *testing.T) {
		video := &tu.MockVideoService{}
		transcript := &tu.MockTranscriptService{}
		summarizer := &tu.MockSummarizer{}
		engine := newTestEngine(registeredStore(t, "u1", "math", ""), video, transcript, summarizer)

		outcome := engine.Run(context.Background(), "u1", "math", nil)

		if outcome.Status != StatusNotConfigured {
			t.Errorf("expected not_configured, got %s", outcome.Status)
		}
		if !errors.Is(outcome.Err, shared.ErrPlaylistNotLinked) {
			t.Errorf("expected ErrPlaylistNotLinked, got %v", outcome.Err)
		}
		if video.Calls.Load() != 0 {
			t.Errorf("expected zero video lookups, got %d", video.Calls.Load())
		}
	})

	t.Run("empty playlist terminates without transcript call", func(t *testing.T) {
		video := &tu.MockVideoService{Err: fmt.Errorf("%w: PLempty", shared.ErrPlaylistEmpty)}
		transcript := &tu.MockTranscriptService{}
		summarizer := &tu.MockSummarizer{}
		st := registeredStore(t, "u1", "math", "PLempty12345")
		engine := newTestEngine(st, video, transcript, summarizer)

		outcome := engine.Run(context.Background(), "u1", "math", nil)

		if outcome.Status != StatusPlaylistEmpty {
			t.Errorf("expected playlist_empty, got %s", outcome.Status)
		}
		if transcript.Calls.Load() != 0 || summarizer.Calls.Load() != 0 {
			t.Error("expected no calls past the failed stage")
		}

		subject, _ := st.GetSubject("u1", "math")
		if subject.CachedLecture != nil {
			t.Error("failed run must not touch the cache")
		}
	})

	t.Run("lookup failure is distinguished from empty", func(t *testing.T) {
		video := &tu.MockVideoService{Err: fmt.Errorf("%w: status 500", shared.ErrLookupFailed)}
		engine := newTestEngine(registeredStore(t, "u1", "math", "PLplaylist12"), video, &tu.MockTranscriptService{}, &tu.MockSummarizer{})

		outcome := engine.Run(context.Background(), "u1", "math", nil)

		if outcome.Status != StatusLookupFailed {
			t.Errorf("expected lookup_failed, got %s", outcome.Status)
		}
		if outcome.Detail == "" {
			t.Error("expected upstream detail on the outcome")
		}
	})

	t.Run("transcript failure still carries the video link", func(t *testing.T) {
		video := &tu.MockVideoService{Video: lectureVideo}
		transcript := &tu.MockTranscriptService{Err: fmt.Errorf("%w: subtitles disabled", shared.ErrTranscriptUnavailable)}
		summarizer := &tu.MockSummarizer{}
		st := registeredStore(t, "u1", "math", "PLplaylist12")
		engine := newTestEngine(st, video, transcript, summarizer)

		outcome := engine.Run(context.Background(), "u1", "math", nil)

		if outcome.Status != StatusTranscriptFailed {
			t.Errorf("expected transcript_failed, got %s", outcome.Status)
		}
		if outcome.VideoTitle != lectureVideo.Title {
			t.Error("expected video title on a transcript failure")
		}
		if outcome.VideoURL != lectureVideo.URL {
			t.Error("expected video URL on a transcript failure")
		}
		if summarizer.Calls.Load() != 0 {
			t.Error("expected no summarization after a transcript failure")
		}

		subject, _ := st.GetSubject("u1", "math")
		if subject.CachedLecture != nil {
			t.Error("failed run must not touch the cache")
		}
	})

	t.Run("summarization failure leaves the cache untouched", func(t *testing.T) {
		video := &tu.MockVideoService{Video: lectureVideo}
		transcript := &tu.MockTranscriptService{Text: "the transcript"}
		summarizer := &tu.MockSummarizer{Err: fmt.Errorf("%w: no choices", shared.ErrSummarizationFailed)}
		st := registeredStore(t, "u1", "math", "PLplaylist12")
		engine := newTestEngine(st, video, transcript, summarizer)

		outcome := engine.Run(context.Background(), "u1", "math", nil)

		if outcome.Status != StatusSummarizeFailed {
			t.Errorf("expected summarization_failed, got %s", outcome.Status)
		}

		subject, _ := st.GetSubject("u1", "math")
		if subject.CachedLecture != nil {
			t.Error("failed run must not touch the cache")
		}
	})

	t.Run("successful run commits the cache", func(t *testing.T) {
		video := &tu.MockVideoService{Video: lectureVideo}
		transcript := &tu.MockTranscriptService{Text: "the transcript"}
		summarizer := &tu.MockSummarizer{Summary: "- hashing basics"}
		st := registeredStore(t, "u1", "math", "PLplaylist12")
		engine := newTestEngine(st, video, transcript, summarizer)

		outcome := engine.Run(context.Background(), "u1", "Math", nil)

		if !outcome.Success() {
			t.Fatalf("expected success, got %s: %v", outcome.Status, outcome.Err)
		}
		if outcome.Summary != "- hashing basics" {
			t.Errorf("unexpected summary: %q", outcome.Summary)
		}
		if video.Calls.Load() != 1 || transcript.Calls.Load() != 1 || summarizer.Calls.Load() != 1 {
			t.Errorf("expected exactly one call per stage, got %d/%d/%d", video.Calls.Load(), transcript.Calls.Load(), summarizer.Calls.Load())
		}

		subject, err := st.GetSubject("u1", "math")
		if err != nil {
			t.Fatalf("GetSubject failed: %v", err)
		}
		if subject.CachedLecture == nil {
			t.Fatal("expected a cached lecture")
		}
		if subject.CachedLecture.VideoTitle != lectureVideo.Title {
			t.Errorf("unexpected cached title: %s", subject.CachedLecture.VideoTitle)
		}
		if subject.CachedLecture.Transcript != "the transcript" {
			t.Errorf("unexpected cached transcript: %s", subject.CachedLecture.Transcript)
		}
	})

	t.Run("a later run overwrites the cached lecture", func(t *testing.T) {
		st := registeredStore(t, "u1", "math", "PLplaylist12")
		transcript := &tu.MockTranscriptService{Text: "t"}
		summarizer := &tu.MockSummarizer{Summary: "s"}

		first := &tu.MockVideoService{Video: &models.VideoRef{VideoID: "old1234567", Title: "Old Lecture", URL: shared.WatchURL("old1234567")}}
		engine := newTestEngine(st, first, transcript, summarizer)
		if outcome := engine.Run(context.Background(), "u1", "math", nil); !outcome.Success() {
			t.Fatalf("first run failed: %s", outcome.Status)
		}

		second := &tu.MockVideoService{Video: &models.VideoRef{VideoID: "new1234567", Title: "New Lecture", URL: shared.WatchURL("new1234567")}}
		engine = newTestEngine(st, second, transcript, summarizer)
		if outcome := engine.Run(context.Background(), "u1", "math", nil); !outcome.Success() {
			t.Fatalf("second run failed: %s", outcome.Status)
		}

		subject, _ := st.GetSubject("u1", "math")
		if subject.CachedLecture.VideoTitle != "New Lecture" {
			t.Errorf("expected overwrite, got %s", subject.CachedLecture.VideoTitle)
		}
	})

	t.Run("progress updates are emitted in stage order", func(t *testing.T) {
		video := &tu.MockVideoService{Video: lectureVideo}
		engine := newTestEngine(registeredStore(t, "u1", "math", "PLplaylist12"), video, &tu.MockTranscriptService{Text: "t"}, &tu.MockSummarizer{Summary: "s"})

		progress := make(chan ProgressUpdate, 8)
		outcome := engine.Run(context.Background(), "u1", "math", progress)
		close(progress)

		if !outcome.Success() {
			t.Fatalf("run failed: %s", outcome.Status)
		}

		var phases []Phase
		for update := range progress {
			phases = append(phases, update.Phase)
		}

		want := []Phase{ResolveVideo, FetchTranscript, Summarize, CommitCache}
		if len(phases) != len(want) {
			t.Fatalf("expected %d updates, got %d", len(want), len(phases))
		}
		for i, phase := range phases {
			if phase != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], phase)
			}
		}
	})

	t.Run("full progress channel never blocks the run", func(t *testing.T) {
		video := &tu.MockVideoService{Video: lectureVideo}
		engine := newTestEngine(registeredStore(t, "u1", "math", "PLplaylist12"), video, &tu.MockTranscriptService{Text: "t"}, &tu.MockSummarizer{Summary: "s"})

		// Unbuffered with no reader: every send must fall through.
		progress := make(chan ProgressUpdate)
		outcome := engine.Run(context.Background(), "u1", "math", progress)

		if !outcome.Success() {
			t.Errorf("expected success with a blocked channel, got %s", outcome.Status)
		}
	})

	t.Run("concurrent runs for distinct subjects proceed", func(t *testing.T) {
		st := store.NewMemoryStore()
		for _, name := range []string{"math", "physics", "history"} {
			if _, err := st.Register("u1", name); err != nil {
				t.Fatalf("Register failed: %v", err)
			}
			if err := st.LinkPlaylist("u1", name, "PL"+name+"12345"); err != nil {
				t.Fatalf("LinkPlaylist failed: %v", err)
			}
		}

		video := &tu.MockVideoService{Video: lectureVideo}
		engine := newTestEngine(st, video, &tu.MockTranscriptService{Text: "t"}, &tu.MockSummarizer{Summary: "s"})

		var wg sync.WaitGroup
		for _, name := range []string{"math", "physics", "history"} {
			wg.Add(1)
			go func(subject string) {
				defer wg.Done()
				if outcome := engine.Run(context.Background(), "u1", subject, nil); !outcome.Success() {
					t.Errorf("%s: expected success, got %s", subject, outcome.Status)
				}
			}(name)
		}
		wg.Wait()

		for _, name := range []string{"math", "physics", "history"} {
			subject, err := st.GetSubject("u1", name)
			if err != nil {
				t.Fatalf("GetSubject failed: %v", err)
			}
			if subject.CachedLecture == nil {
				t.Errorf("%s: expected a cached lecture", name)
			}
		}
	})

	t.Run("repeat runs for the same subject serialize", func(t *testing.T) {
		st := registeredStore(t, "u1", "math", "PLplaylist12")
		video := &tu.MockVideoService{Video: lectureVideo}
		engine := newTestEngine(st, video, &tu.MockTranscriptService{Text: "t"}, &tu.MockSummarizer{Summary: "s"})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				engine.Run(context.Background(), "u1", "math", nil)
			}()
		}
		wg.Wait()

		if video.Calls.Load() != 8 {
			t.Errorf("expected 8 serialized runs, got %d lookups", video.Calls.Load())
		}
	})
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusSummarized:       "summarized",
		StatusNotConfigured:    "not_configured",
		StatusPlaylistEmpty:    "playlist_empty",
		StatusLookupFailed:     "lookup_failed",
		StatusTranscriptFailed: "transcript_failed",
		StatusSummarizeFailed:  "summarization_failed",
		StatusCacheFailed:      "cache_failed",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
