// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// subjectCommand handles subject registry operations
func subjectCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "subject",
		Aliases: []string{"sub"},
		Usage:   "Manage tracked subjects",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Register a subject to track",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Action: r.SubjectAdd,
			},
			{
				Name:  "link",
				Usage: "Bind a YouTube playlist to a registered subject",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
					&cli.StringArg{
						Name: "playlist",
					},
				},
				Action: r.SubjectLink,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List your subjects and their playlist bindings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SubjectList,
			},
		},
	}
}

// lectureCommand handles lecture retrieval and cache operations
func lectureCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "lecture",
		Aliases: []string{"lec"},
		Usage:   "Fetch and summarize lectures",
		Commands: []*cli.Command{
			{
				Name:  "latest",
				Usage: "Fetch, transcribe, and summarize the newest lecture for a subject",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "subject",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "Disable styled output",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Suppress progress messages",
						Aliases: []string{"q"},
					},
				},
				Action: r.LectureLatest,
			},
			{
				Name:  "cached",
				Usage: "Show the cached summary for a subject",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "subject",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.StringFlag{
						Name:    "export",
						Aliases: []string{"o"},
						Usage:   "Export the cached lecture to a Markdown file",
					},
				},
				Action: r.LectureCached,
			},
		},
	}
}

// setupCommand handles setup operations for the durable database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// configCommand handles configuration file operations
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a config file from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the config file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
