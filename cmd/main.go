package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/lecx/internal/services"
	"github.com/desertthunder/lecx/internal/shared"
	"github.com/desertthunder/lecx/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	videoService := services.NewYouTubeService(config.Credentials.YouTube.BaseURL, config.Credentials.YouTube.APIKey, nil)
	transcriptService := services.NewTranscriptClient(config.Credentials.Transcript.BaseURL, nil)
	summaryService := services.NewSummaryClient(config.Credentials.Summarizer.BaseURL, config.Credentials.Summarizer.APIKey, config.Credentials.Summarizer.Model, nil)

	var subjectStore store.SubjectStore = store.NewMemoryStore()
	if config.Database.Path != "" {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			subjectStore = store.NewSQLiteStore(db)
		} else {
			logger.Warn("failed to open database, falling back to in-memory registry", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Store:      subjectStore,
		Video:      videoService,
		Transcript: transcriptService,
		Summarizer: summaryService,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:    "lecx",
		Usage:   "Track lecture playlists and summarize the latest upload",
		Version: "0.3.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "Profile to act as (defaults to user.default_id from config)",
			},
		},
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else if msg := err.Error(); msg == "" {
			os.Exit(1)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
