package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/campusmart/campusmart/pkg/iojson"
)

// ReportedError is a failure that was already written to the user as a JSON
// error blob. main exits non-zero without printing it again.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// reportJSON writes err to the root ErrWriter as an iojson error blob.
func reportJSON(c *cli.Command, err error, data map[string]any) error {
	if werr := iojson.WriteErrorTo(c.Root().ErrWriter, err.Error(), data); werr != nil {
		return err
	}
	return &ReportedError{Err: err}
}
