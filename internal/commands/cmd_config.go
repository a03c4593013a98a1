package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/campusmart/campusmart/internal/core/config"
	"github.com/campusmart/campusmart/internal/core/styles"
	"github.com/campusmart/campusmart/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "campusmart config validate [options]",
				Description: "Validates the configuration values and checks that the config file and data directory are usable.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})

	return app
}

// validationResult is the JSON output format for config validate.
type validationResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []string                   `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	err := cfg.ValidateDeep(cmd.flags.ConfigPath)

	result := validationResult{
		Valid:    err == nil,
		Errors:   errorLines(err),
		Warnings: cfg.Warnings(),
	}

	out := c.Root().Writer
	if cmd.format == "json" {
		if werr := iojson.WriteWith(out, c.Root().ErrWriter, result); werr != nil {
			return werr
		}
	} else {
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintf(out, "%s %s: %s\n", styles.TextMutedStyle.Render("warn"), w.Category, w.Message)
		}
		for _, e := range result.Errors {
			_, _ = fmt.Fprintf(out, "%s %s\n", styles.FormErrorStyle.Render("error"), e)
		}
		if result.Valid {
			_, _ = fmt.Fprintln(out, styles.TextPrimaryStyle.Render(styles.IconCheck+" Configuration is valid"))
		}
	}

	if result.Valid {
		return nil
	}
	invalid := fmt.Errorf("configuration has %d error(s)", len(result.Errors))
	if cmd.format == "json" {
		return reportJSON(c, invalid, map[string]any{"config": cmd.flags.ConfigPath})
	}
	return invalid
}

// errorLines flattens criterio field errors into "field: message" lines.
func errorLines(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, fmt.Sprintf("%s: %s", fe.Field, fe.Err))
	}
	return lines
}
