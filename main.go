package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/campusmart/campusmart/internal/commands"
	"github.com/campusmart/campusmart/internal/core/config"
	"github.com/campusmart/campusmart/internal/core/styles"
	"github.com/campusmart/campusmart/internal/data/db"
	"github.com/campusmart/campusmart/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		database  *db.DB
		app       = &commands.App{}
		flags     = &commands.Flags{}
	)

	root := commands.NewRoot(flags, app, build())

	root.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := os.MkdirAll(flags.DataDir, 0o755); err != nil {
			return ctx, fmt.Errorf("create data dir: %w", err)
		}

		// Always log to a file so the TUI owns the terminal
		logFile := flags.LogFile
		if logFile == "" {
			logFile = commands.DefaultLogFile(flags.DataDir)
		}

		logger, closer, err := logutils.New(flags.LogLevel, logFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}
		flags.Config = cfg

		// Apply configured theme (validation ensures name is valid)
		palette, _ := styles.GetPalette(cfg.TUI.Theme)
		styles.SetTheme(palette)

		database, err = commands.OpenDatabase(cfg)
		if err != nil {
			return ctx, err
		}

		// Populate the pre-allocated App struct (commands already hold a pointer to it)
		*app = *commands.NewApp(cfg, database)

		log.Debug().
			Str("data_dir", cfg.DataDir).
			Bool("record", cfg.Submissions.RecordEnabled()).
			Msg("campusmart started")
		return ctx, nil
	}

	root.After = func(ctx context.Context, c *cli.Command) error {
		// Close database connection
		if database != nil {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close database")
				return err
			}
		}

		// Close log file
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		var reported *commands.ReportedError
		if !errors.As(runErr, &reported) {
			fmt.Println()
			fmt.Println(runErr.Error())
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
