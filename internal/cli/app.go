package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/config"
	"github.com/sandeepkv93/homemaint/internal/scheduler"
	"github.com/sandeepkv93/homemaint/internal/storage"
	"github.com/sandeepkv93/homemaint/internal/store"
	"github.com/sandeepkv93/homemaint/internal/tracker"
	"github.com/sandeepkv93/homemaint/internal/update"
)

// app wires one session: logger, journal, optional notice engine and the
// tracker over a fresh store.
type app struct {
	cfg     config.RuntimeConfig
	logger  *slog.Logger
	tracker *tracker.Tracker
	journal *storage.SQLiteRepository
	engine  *scheduler.Engine
	closers []io.Closer
}

func newApp(cfg config.RuntimeConfig, withNotices bool) (*app, error) {
	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	repo, err := storage.OpenSQLite(cfg.ActivityDBPath)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("open activity journal: %w", err)
	}
	a.closers = append(a.closers, repo)
	a.journal = repo

	deps := tracker.Deps{Journal: repo, Logger: logger}
	if withNotices && cfg.DueNotices {
		a.engine = scheduler.NewEngine(cfg.NoticeBuffer)
		a.engine.Start()
		deps.Notices = a.engine
	}
	a.tracker = tracker.New(store.New(), deps)
	logger.Info("session started", "activity_db", cfg.ActivityDBPath, "due_notices", a.engine != nil)
	return a, nil
}

// Close stops the engine before closing the journal and the log file.
func (a *app) Close() error {
	if a.engine != nil {
		if n := a.engine.Pending(); n > 0 {
			a.logger.Debug("due notices still pending at exit", "count", n)
		}
		a.engine.Stop()
		if n := a.engine.Dropped(); n > 0 {
			a.logger.Warn("due notices dropped", "count", n)
		}
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func runTUI(ctx context.Context, cfg config.RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := update.Options{
		Context:          ctx,
		DefaultFrequency: cfg.DefaultFrequency,
		ActivityLimit:    cfg.ActivityLimit,
	}
	if a.engine != nil {
		opts.Notices = a.engine.C()
	}
	program := tea.NewProgram(update.NewModel(a.tracker, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		a.logger.Error("ui exited", "error", err)
		return fmt.Errorf("homemaint failed: %w", err)
	}
	return nil
}
