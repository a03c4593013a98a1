package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewRoot builds the campusmart command tree: global flags, subcommands, and
// the TUI as the default action. Lifecycle hooks are left to the caller.
func NewRoot(flags *Flags, app *App, version string) *cli.Command {
	root := &cli.Command{
		Name:      "campusmart",
		Usage:     "Campus marketplace: contact the team or register as a seller",
		UsageText: "campusmart [global options] command [command options]",
		Description: `campusmart is a terminal front end for the campus marketplace.

Run 'campusmart' with no arguments to open the interactive interface, where you
can send a message to the team, register as a seller, and read the terms.
Accepted forms are recorded locally; use 'campusmart submissions ls' to review them.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CAMPUSMART_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/campusmart.log)",
				Sources:     cli.EnvVars("CAMPUSMART_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CAMPUSMART_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CAMPUSMART_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	root = NewSubmissionsCmd(flags, app).Register(root)
	root = NewRegionsCmd().Register(root)
	root = NewConfigCmd(flags).Register(root)

	// TUI flags live on the root command since the TUI is the default action
	tuiCmd := NewTuiCmd(flags, app)
	root.Flags = append(root.Flags, tuiCmd.Flags()...)
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'campusmart --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}
