package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/desertthunder/lecx/internal/formatter"
	"github.com/desertthunder/lecx/internal/pipeline"
	"github.com/desertthunder/lecx/internal/shared"
	"github.com/urfave/cli/v3"
)

// LectureLatest runs the full retrieval-summarization sequence for a subject
// and renders the terminal outcome.
//
// Progress updates stream to the output while the run is in flight unless
// --quiet is set. The process exit code reflects whether the run reached the
// cached state.
func (r *Runner) LectureLatest(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("subject")
	if name == "" {
		return fmt.Errorf("%w: subject name", shared.ErrMissingArgument)
	}

	userID := r.userID(cmd)

	var progress chan pipeline.ProgressUpdate
	var wg sync.WaitGroup

	if !cmd.Bool("quiet") && !cmd.Bool("json") {
		progress = make(chan pipeline.ProgressUpdate, 8)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for update := range progress {
				r.writePlain("%s\n", update.Message)
			}
		}()
	}

	outcome := r.engine.Run(ctx, userID, name, progress)

	if progress != nil {
		close(progress)
		wg.Wait()
	}

	if cmd.Bool("json") {
		result := map[string]any{
			"status":  outcome.Status.String(),
			"subject": outcome.Subject,
		}
		if outcome.VideoTitle != "" {
			result["video_title"] = outcome.VideoTitle
		}
		if outcome.VideoURL != "" {
			result["video_url"] = outcome.VideoURL
		}
		if outcome.Summary != "" {
			result["summary"] = outcome.Summary
		}
		if outcome.Detail != "" {
			result["detail"] = outcome.Detail
		}
		if err := r.writeJSON(result, true); err != nil {
			return err
		}
	} else if cmd.Bool("plain") {
		r.writePlain("%s", formatter.RenderOutcomeText(outcome))
	} else {
		r.writePlain("%s", formatter.RenderOutcome(outcome))
	}

	if !outcome.Success() {
		return cli.Exit("", 1)
	}

	return nil
}

// LectureCached shows the cached summary for a subject without touching any
// upstream service. With --export the full cached lecture is written to a
// Markdown file.
func (r *Runner) LectureCached(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("subject")
	if name == "" {
		return fmt.Errorf("%w: subject name", shared.ErrMissingArgument)
	}

	userID := r.userID(cmd)
	normalized := shared.NormalizeSubjectName(name)

	subject, err := r.store.GetSubject(userID, name)
	if err != nil {
		if errors.Is(err, shared.ErrSubjectNotFound) {
			r.writePlain("You're not tracking '%s'. Add it with `lecx subject add %s`.\n", normalized, normalized)
			return cli.Exit("", 1)
		}
		return fmt.Errorf("failed to look up subject: %w", err)
	}

	if subject.CachedLecture == nil {
		r.writePlain("No summary cached for '%s' yet. Run `lecx lecture latest %s` first.\n", normalized, normalized)
		return cli.Exit("", 1)
	}

	cache := subject.CachedLecture

	if path := cmd.String("export"); path != "" || cmd.IsSet("export") {
		written, err := formatter.WriteMarkdownExport(normalized, cache, path)
		if err != nil {
			return err
		}
		r.writePlain("Exported cached lecture to %s\n", written)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(cache, true)
	}

	outcome := &pipeline.Outcome{
		Status:     pipeline.StatusSummarized,
		Subject:    normalized,
		VideoTitle: cache.VideoTitle,
		Summary:    cache.Summary,
	}
	return r.writePlain("%s", formatter.RenderOutcome(outcome))
}
