package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/lecx/internal/formatter"
	"github.com/desertthunder/lecx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SubjectAdd registers a subject for the acting user. Re-adding an existing
// subject is a no-op that reports the subject is already tracked.
func (r *Runner) SubjectAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: subject name", shared.ErrMissingArgument)
	}

	userID := r.userID(cmd)
	normalized := shared.NormalizeSubjectName(name)

	created, err := r.store.Register(userID, name)
	if err != nil {
		return fmt.Errorf("failed to register subject: %w", err)
	}

	if created {
		r.logger.Info("subject registered", "user", userID, "subject", normalized)
		r.writePlain("Now tracking '%s'. Link a playlist with `lecx subject link %s <url>`.\n", normalized, normalized)
	} else {
		r.writePlain("'%s' is already being tracked.\n", normalized)
	}

	return nil
}

// SubjectLink binds a playlist to an already-registered subject. The playlist
// argument accepts a full YouTube URL or a bare playlist ID.
func (r *Runner) SubjectLink(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	playlist := cmd.StringArg("playlist")

	if name == "" || playlist == "" {
		return fmt.Errorf("%w: subject name and playlist URL", shared.ErrMissingArgument)
	}

	playlistID := shared.ExtractPlaylistID(playlist)
	if playlistID == "" {
		return fmt.Errorf("%w: %s", shared.ErrInvalidPlaylistURL, playlist)
	}

	userID := r.userID(cmd)
	normalized := shared.NormalizeSubjectName(name)

	if err := r.store.LinkPlaylist(userID, name, playlistID); err != nil {
		return fmt.Errorf("failed to link playlist: %w", err)
	}

	r.logger.Info("playlist linked", "user", userID, "subject", normalized, "playlist", playlistID)
	r.writePlain("Linked playlist %s to '%s'.\n", playlistID, normalized)

	return nil
}

// SubjectList prints the acting user's subjects with their bindings.
func (r *Runner) SubjectList(ctx context.Context, cmd *cli.Command) error {
	userID := r.userID(cmd)

	subjects, err := r.store.ListSubjects(userID)
	if err != nil {
		return fmt.Errorf("failed to list subjects: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(subjects, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.RenderSubjects(subjects))
}
