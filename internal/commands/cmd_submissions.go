package commands

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/pkg/iojson"
)

type SubmissionsCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
	kind       string
	yes        bool
}

// NewSubmissionsCmd creates the submissions command group.
func NewSubmissionsCmd(flags *Flags, app *App) *SubmissionsCmd {
	return &SubmissionsCmd{flags: flags, app: app}
}

// Register adds the submissions commands to the application
func (cmd *SubmissionsCmd) Register(app *cli.Command) *cli.Command {
	jsonFlag := func() cli.Flag {
		return &cli.BoolFlag{
			Name:        "json",
			Usage:       "output as JSON",
			Destination: &cmd.jsonOutput,
		}
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "submissions",
		Usage: "Inspect recorded form submissions",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List recorded submissions, newest first",
				UsageText: "campusmart submissions ls [--json] [--kind contact|seller]",
				Flags: []cli.Flag{
					jsonFlag(),
					&cli.StringFlag{
						Name:        "kind",
						Usage:       "only show submissions of this kind (contact, seller)",
						Destination: &cmd.kind,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "show",
				Usage:     "Show one submission and its payload",
				UsageText: "campusmart submissions show [--json] <id|reference>",
				Flags:     []cli.Flag{jsonFlag()},
				Action:    cmd.runShow,
			},
			{
				Name:      "clear",
				Usage:     "Delete every recorded submission",
				UsageText: "campusmart submissions clear --yes",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Usage:       "confirm deletion",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runClear,
			},
		},
	})

	return app
}

// submissionInfo is the JSON output format for submissions ls and show.
type submissionInfo struct {
	ID        string          `json:"id"`
	Kind      submission.Kind `json:"kind"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   any             `json:"payload"`
}

func newSubmissionInfo(s submission.Submission) submissionInfo {
	return submissionInfo{
		ID:        s.ID,
		Kind:      s.Kind,
		Reference: s.Reference,
		CreatedAt: s.CreatedAt,
		Payload:   s.Payload,
	}
}

func (cmd *SubmissionsCmd) runList(ctx context.Context, c *cli.Command) error {
	kind := submission.Kind(cmd.kind)

	var (
		subs []submission.Submission
		err  error
	)
	switch kind {
	case "":
		subs, err = cmd.app.Submissions.List(ctx)
	case submission.KindContact, submission.KindSeller:
		subs, err = cmd.app.Submissions.ListByKind(ctx, kind)
	default:
		err = fmt.Errorf("unknown kind %q (want contact or seller)", cmd.kind)
	}
	if err != nil {
		return cmd.fail(c, err, map[string]any{"kind": cmd.kind})
	}

	if len(subs) == 0 {
		if !cmd.jsonOutput {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, "No submissions found")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, s := range subs {
			if err := iojson.WriteLine(out, newSubmissionInfo(s)); err != nil {
				return fmt.Errorf("encode submission: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "REFERENCE\tKIND\tCREATED")
	for _, s := range subs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Reference, s.Kind, s.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func (cmd *SubmissionsCmd) runShow(ctx context.Context, c *cli.Command) error {
	key := c.Args().First()
	if key == "" {
		return cmd.fail(c, errors.New("submissions show needs an id or reference"), nil)
	}

	s, err := cmd.app.Submissions.Get(ctx, key)
	if errors.Is(err, submission.ErrNotFound) {
		return cmd.fail(c, fmt.Errorf("no submission with id or reference %q", key), map[string]any{"key": key})
	}
	if err != nil {
		return cmd.fail(c, err, map[string]any{"key": key})
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, newSubmissionInfo(s))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Reference:\t%s\n", s.Reference)
	_, _ = fmt.Fprintf(w, "ID:\t%s\n", s.ID)
	_, _ = fmt.Fprintf(w, "Kind:\t%s\n", s.Kind)
	_, _ = fmt.Fprintf(w, "Created:\t%s\n", s.CreatedAt.Local().Format(time.DateTime))
	if err := w.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out)
	return iojson.WriteWith(out, c.Root().ErrWriter, s.Payload)
}

func (cmd *SubmissionsCmd) runClear(ctx context.Context, c *cli.Command) error {
	if !cmd.yes {
		n, err := cmd.app.Submissions.Count(ctx)
		if err != nil {
			return fmt.Errorf("count submissions: %w", err)
		}
		return fmt.Errorf("refusing to delete %d submission(s) without --yes", n)
	}

	n, err := cmd.app.Submissions.Clear(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Deleted %d submission(s)\n", n)
	return nil
}

func (cmd *SubmissionsCmd) fail(c *cli.Command, err error, data map[string]any) error {
	if !cmd.jsonOutput {
		return err
	}
	return reportJSON(c, err, data)
}
