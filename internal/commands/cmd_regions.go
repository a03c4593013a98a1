package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/campusmart/campusmart/internal/core/seller"
	"github.com/campusmart/campusmart/pkg/iojson"
)

type RegionsCmd struct {
	jsonOutput bool
}

// NewRegionsCmd creates the regions command.
func NewRegionsCmd() *RegionsCmd {
	return &RegionsCmd{}
}

// Register adds the regions command to the application
func (cmd *RegionsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "regions",
		Usage:     "List the states sellers can register from, or the cities of one state",
		UsageText: "campusmart regions [--json] [state]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RegionsCmd) run(_ context.Context, c *cli.Command) error {
	values := seller.States()
	if state := c.Args().First(); state != "" {
		if !seller.IsState(state) {
			err := fmt.Errorf("unknown state %q", state)
			if cmd.jsonOutput {
				return reportJSON(c, err, map[string]any{"state": state})
			}
			return err
		}
		values = seller.CitiesFor(state)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, values)
	}

	for _, v := range values {
		_, _ = fmt.Fprintln(out, v)
	}
	return nil
}
