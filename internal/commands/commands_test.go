package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmart/campusmart/internal/core/config"
	"github.com/campusmart/campusmart/internal/core/seller"
	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/pkg/iojson"
)

type harness struct {
	flags *Flags
	app   *App
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	database, err := OpenDatabase(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return &harness{
		flags: &Flags{Config: &cfg, ConfigPath: filepath.Join(cfg.DataDir, "missing.yaml")},
		app:   NewApp(&cfg, database),
	}
}

// run executes args against a fresh command tree and returns stdout.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := h.runAll(t, args...)
	return out, err
}

// runAll is run that also returns what the command wrote to ErrWriter.
func (h *harness) runAll(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRoot(h.flags, h.app, "test")
	root.Writer = &out
	root.ErrWriter = &errOut

	err := root.Run(context.Background(), append([]string{"campusmart"}, args...))
	return out.String(), errOut.String(), err
}

// decodeError parses an iojson error blob and checks it was reported once.
func decodeError(t *testing.T, errOut string, err error) iojson.Error {
	t.Helper()

	var reported *ReportedError
	require.ErrorAs(t, err, &reported)

	var blob iojson.Error
	require.NoError(t, json.Unmarshal([]byte(errOut), &blob))
	assert.Equal(t, err.Error(), blob.Message)
	return blob
}

func TestNewApp_recorder_follows_config(t *testing.T) {
	h := newHarness(t)
	assert.NotNil(t, h.app.Recorder)

	off := false
	cfg := *h.flags.Config
	cfg.Submissions.Record = &off
	assert.Nil(t, NewApp(&cfg, h.app.DB).Recorder)
}

func TestRegionsCmd(t *testing.T) {
	h := newHarness(t)

	t.Run("lists states", func(t *testing.T) {
		out, err := h.run(t, "regions")
		require.NoError(t, err)
		assert.Equal(t, seller.States(), strings.Split(strings.TrimSpace(out), "\n"))
	})

	t.Run("lists cities of a state", func(t *testing.T) {
		out, err := h.run(t, "regions", "Punjab")
		require.NoError(t, err)
		assert.Equal(t, seller.CitiesFor("Punjab"), strings.Split(strings.TrimSpace(out), "\n"))
	})

	t.Run("json", func(t *testing.T) {
		out, err := h.run(t, "regions", "--json", "Sikkim")
		require.NoError(t, err)

		var cities []string
		require.NoError(t, json.Unmarshal([]byte(out), &cities))
		assert.Equal(t, []string{"Gangtok", "Namchi", "Mangan"}, cities)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, errOut, err := h.runAll(t, "regions", "Atlantis")
		assert.ErrorContains(t, err, `unknown state "Atlantis"`)
		assert.NotErrorAs(t, err, new(*ReportedError))
		assert.Empty(t, errOut)
	})

	t.Run("unknown state as json", func(t *testing.T) {
		out, errOut, err := h.runAll(t, "regions", "--json", "Atlantis")
		require.Error(t, err)
		assert.Empty(t, out)

		blob := decodeError(t, errOut, err)
		assert.Equal(t, `unknown state "Atlantis"`, blob.Message)
		assert.Equal(t, "Atlantis", blob.Data["state"])
	})
}

func TestSubmissionsCmd(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	out, errOut, err := h.runAll(t, "submissions", "ls")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "No submissions found\n", errOut)

	out, errOut, err = h.runAll(t, "submissions", "ls", "--json")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)

	contactSub, err := h.app.Recorder.Record(ctx, submission.KindContact, map[string]string{"name": "Asha"})
	require.NoError(t, err)
	sellerSub, err := h.app.Recorder.Record(ctx, submission.KindSeller, map[string]string{"first_name": "Ravi"})
	require.NoError(t, err)

	t.Run("table", func(t *testing.T) {
		out, err := h.run(t, "submissions", "ls")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "REFERENCE"))
		assert.Contains(t, out, contactSub.Reference)
		assert.Contains(t, out, sellerSub.Reference)
	})

	t.Run("json lines filtered by kind", func(t *testing.T) {
		out, err := h.run(t, "submissions", "ls", "--json", "--kind", "seller")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 1)

		var info struct {
			Kind      string            `json:"kind"`
			Reference string            `json:"reference"`
			Payload   map[string]string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
		assert.Equal(t, "seller", info.Kind)
		assert.Equal(t, sellerSub.Reference, info.Reference)
		assert.Equal(t, "Ravi", info.Payload["first_name"])
	})

	t.Run("table filtered by kind", func(t *testing.T) {
		out, err := h.run(t, "submissions", "ls", "--kind", "contact")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], contactSub.Reference)
		assert.NotContains(t, out, sellerSub.Reference)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, errOut, err := h.runAll(t, "submissions", "ls", "--kind", "buyer")
		assert.ErrorContains(t, err, "unknown kind")
		assert.Empty(t, errOut)
	})

	t.Run("unknown kind as json", func(t *testing.T) {
		out, errOut, err := h.runAll(t, "submissions", "ls", "--json", "--kind", "buyer")
		require.Error(t, err)
		assert.Empty(t, out)

		blob := decodeError(t, errOut, err)
		assert.Contains(t, blob.Message, "unknown kind")
		assert.Equal(t, "buyer", blob.Data["kind"])
	})

	t.Run("show by reference", func(t *testing.T) {
		out, err := h.run(t, "submissions", "show", strings.ToLower(sellerSub.Reference))
		require.NoError(t, err)

		assert.Contains(t, out, "Reference:  "+sellerSub.Reference)
		assert.Contains(t, out, "ID:         "+sellerSub.ID)
		assert.Contains(t, out, "Kind:       seller")
		assert.Contains(t, out, `"first_name": "Ravi"`)
	})

	t.Run("show by id as json", func(t *testing.T) {
		out, err := h.run(t, "submissions", "show", "--json", contactSub.ID)
		require.NoError(t, err)

		var info struct {
			ID        string            `json:"id"`
			Kind      string            `json:"kind"`
			Reference string            `json:"reference"`
			Payload   map[string]string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, contactSub.ID, info.ID)
		assert.Equal(t, "contact", info.Kind)
		assert.Equal(t, contactSub.Reference, info.Reference)
		assert.Equal(t, "Asha", info.Payload["name"])
	})

	t.Run("show unknown key", func(t *testing.T) {
		_, err := h.run(t, "submissions", "show", "NOPE2345")
		assert.ErrorContains(t, err, `no submission with id or reference "NOPE2345"`)

		_, errOut, err := h.runAll(t, "submissions", "show", "--json", "NOPE2345")
		blob := decodeError(t, errOut, err)
		assert.Equal(t, "NOPE2345", blob.Data["key"])
	})

	t.Run("show needs a key", func(t *testing.T) {
		_, err := h.run(t, "submissions", "show")
		assert.ErrorContains(t, err, "needs an id or reference")
	})

	t.Run("clear needs confirmation", func(t *testing.T) {
		_, err := h.run(t, "submissions", "clear")
		require.ErrorContains(t, err, "without --yes")

		n, err := h.app.Submissions.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("clear", func(t *testing.T) {
		out, err := h.run(t, "submissions", "clear", "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted 2 submission(s)")

		n, err := h.app.Submissions.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestConfigCmd_validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		h := newHarness(t)

		out, err := h.run(t, "config", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})

	t.Run("json with warnings", func(t *testing.T) {
		h := newHarness(t)
		off := false
		h.flags.Config.Submissions.Record = &off

		out, err := h.run(t, "config", "validate", "--format", "json")
		require.NoError(t, err)

		var result validationResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.True(t, result.Valid)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "record", result.Warnings[0].Item)
	})

	t.Run("config path is a directory", func(t *testing.T) {
		h := newHarness(t)
		dir := filepath.Join(h.flags.Config.DataDir, "conf.d")
		require.NoError(t, os.Mkdir(dir, 0o755))
		h.flags.ConfigPath = dir

		out, errOut, err := h.runAll(t, "config", "validate", "--format", "json")
		require.Error(t, err)

		var result validationResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "config_file")

		blob := decodeError(t, errOut, err)
		assert.Equal(t, "configuration has 1 error(s)", blob.Message)
		assert.Equal(t, dir, blob.Data["config"])
	})

	t.Run("text errors are returned not reported", func(t *testing.T) {
		h := newHarness(t)
		dir := filepath.Join(h.flags.Config.DataDir, "conf.d")
		require.NoError(t, os.Mkdir(dir, 0o755))
		h.flags.ConfigPath = dir

		out, errOut, err := h.runAll(t, "config", "validate")
		require.ErrorContains(t, err, "configuration has 1 error(s)")
		assert.NotErrorAs(t, err, new(*ReportedError))
		assert.Contains(t, out, "config_file")
		assert.Empty(t, errOut)
	})
}

func TestReportedError_unwraps(t *testing.T) {
	cause := errors.New("boom")
	err := error(&ReportedError{Err: cause})

	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestRoot_rejects_unknown_command(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "frobnicate")
	assert.ErrorContains(t, err, `unknown command "frobnicate"`)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	assert.Equal(t, "/xdg/config/campusmart/config.yaml", DefaultConfigPath())
	assert.Equal(t, "/xdg/data/campusmart", DefaultDataDir())
	assert.Equal(t, "/xdg/data/campusmart/campusmart.log", DefaultLogFile("/xdg/data/campusmart"))
}

func TestRoot_default_action_needs_terminal(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t)
	assert.ErrorIs(t, err, ErrNotATerminal)
}
