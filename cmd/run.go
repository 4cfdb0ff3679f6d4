package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/capisco/internal/config"
	"github.com/abhisek/capisco/internal/logging"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/session"
	"github.com/abhisek/capisco/internal/store"
	"github.com/spf13/cobra"
)

// env is the shared runtime a command works against.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *store.Store
	catalog *quiz.Catalog

	closeLog func() error
}

type envOptions struct {
	// quietLog discards log output unless a log file is configured.
	quietLog bool
	// noStore skips opening the database.
	noStore bool
	// catalog loads the quiz topics.
	catalog bool
}

// openEnv loads configuration, builds the logger and opens the store.
func openEnv(cmd *cobra.Command, opts envOptions) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Open(cfg.Log, opts.quietLog)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, log: logger, closeLog: closeLog}

	if !opts.noStore {
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = st
		logger.Debug("store opened", slog.String("path", dbPath))
	}

	if opts.catalog {
		if e.catalog, err = loadCatalog(cfg.Quiz); err != nil {
			e.Close()
			return nil, err
		}
	}
	return e, nil
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warn("failed to close store", slog.Any("error", err))
		}
	}
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

// events returns the event repo, or nil without a store.
func (e *env) events() store.EventRepo {
	if e.store == nil {
		return nil
	}
	return e.store.EventRepo()
}

// newSession restores saved progress and builds a quiz session.
func (e *env) newSession(ctx context.Context, rng quiz.Rand) (*session.Session, error) {
	opts := session.Options{
		Rand:           rng,
		MaxRecentTypes: e.cfg.Quiz.MaxRecentTypes,
		Logger:         e.log,
	}
	if e.store != nil {
		tracker, err := session.LoadTracker(ctx, e.store.SnapshotRepo())
		if err != nil {
			return nil, err
		}
		opts.Tracker = tracker
		opts.Events = e.store.EventRepo()
		opts.Snapshots = e.store.SnapshotRepo()
	}
	if opts.Rand == nil {
		opts.Rand = quiz.NewTimeRand()
	}
	return session.New(e.catalog, opts), nil
}

// loadCatalog returns the built-in topics plus any topic files in the
// configured data directory. User files replace built-ins with the same topic.
func loadCatalog(cfg config.QuizConfig) (*quiz.Catalog, error) {
	catalog, err := quiz.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}
	if cfg.DataDir != "" {
		if err := catalog.LoadFS(os.DirFS(cfg.DataDir), "."); err != nil {
			return nil, fmt.Errorf("load topics from %s: %w", cfg.DataDir, err)
		}
	}
	return catalog, nil
}
