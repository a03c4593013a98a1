package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/campusmart/campusmart/internal/core/config"
	"github.com/campusmart/campusmart/internal/core/submission"
	"github.com/campusmart/campusmart/internal/data/db"
	"github.com/campusmart/campusmart/internal/data/stores"
)

// App is the set of dependencies built in the root Before hook. Commands
// hold a pointer to it before it is populated.
type App struct {
	Config      *config.Config
	DB          *db.DB
	Submissions *stores.SubmissionStore
	// Recorder is nil when recording is disabled in config.
	Recorder submission.Recorder
}

// NewApp wires the submission store and, when enabled, the recorder.
func NewApp(cfg *config.Config, database *db.DB) *App {
	subs := stores.NewSubmissionStore(database)

	app := &App{
		Config:      cfg,
		DB:          database,
		Submissions: subs,
	}
	if cfg.Submissions.RecordEnabled() {
		app.Recorder = submission.NewRecorder(subs)
	}
	return app
}

// OpenDatabase opens the submission database. A corrupted file is moved
// aside and a fresh database is created in its place.
func OpenDatabase(cfg *config.Config) (*db.DB, error) {
	opts := db.OpenOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil {
		return database, nil
	}
	if !stores.IsCorruptionError(err) {
		return nil, fmt.Errorf("open database: %w", err)
	}

	backup, rerr := stores.RecoverFromCorruption(cfg.DataDir)
	if rerr != nil {
		return nil, fmt.Errorf("recover database: %w", rerr)
	}
	log.Warn().Err(err).
		Str("file", cfg.DatabaseFile()).
		Str("backup", backup).
		Msg("database corrupted, starting with a fresh one")

	database, err = db.Open(cfg.DataDir, opts)
	if err != nil {
		return nil, fmt.Errorf("open database after recovery: %w", err)
	}
	return database, nil
}
