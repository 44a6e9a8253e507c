package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// refreshTimeout bounds a single scheduled inventory refresh.
const refreshTimeout = 30 * time.Second

// Scheduler runs the inventory metrics refresh on a fixed interval. A
// refresh that is still running when the next tick fires causes that tick
// to be skipped.
type Scheduler struct {
	cron     *cron.Cron
	engine   *Engine
	log      *slog.Logger
	interval time.Duration
}

// NewScheduler registers the inventory refresh job to run every interval.
func NewScheduler(eng *Engine, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{log: log.With("component", "scheduler")}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		engine:   eng,
		log:      log,
		interval: interval,
	}

	if _, err := s.cron.AddFunc("@every "+interval.String(), s.runInventoryRefresh); err != nil {
		return nil, fmt.Errorf("registering inventory refresh every %s: %w", interval, err)
	}
	return s, nil
}

// Start runs the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "inventory_interval", s.interval)
	s.cron.Start()
}

// Stop halts the cron loop. The returned context is done once any running
// refresh has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries exposes the registered cron entries.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runInventoryRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.engine.RefreshInventoryMetrics(ctx); err != nil {
		s.log.Error("scheduled inventory refresh failed", "error", err)
	}
}

// cronLogger routes robfig/cron's internal logging to slog. cron's Info
// messages are chatty per-tick output, so they go to debug.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
