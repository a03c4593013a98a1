package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/tui"
	"github.com/campusmart/campusmart/pkg/profiler"
)

// ErrNotATerminal is returned when the TUI is started without a terminal.
var ErrNotATerminal = errors.New("the interactive interface needs a terminal; see 'campusmart --help' for scriptable commands")

type TuiCmd struct {
	flags *Flags
	app   *App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on 127.0.0.1 at the given port (e.g., 6060)",
			Sources:     cli.EnvVars("CAMPUSMART_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotATerminal
	}

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, log.Logger)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	toasts := toast.NewStore(toast.WithLogger(log.With().Str("component", "toast").Logger()))
	defer toasts.Close()

	m := tui.New(ctx, tui.Options{
		Toasts:   toasts,
		Recorder: cmd.app.Recorder,
		Logger:   log.Logger,
	})

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
