package sql

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/syssam/sqlcore/dialect"
)

// QueryStats holds statement execution statistics.
type QueryStats struct {
	// TotalQueries is the total number of queries executed.
	TotalQueries atomic.Int64
	// TotalExecs is the total number of exec statements executed.
	TotalExecs atomic.Int64
	// TotalDuration is the total time spent in the database, in nanoseconds.
	TotalDuration atomic.Int64
	// SlowQueries is the count of statements exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the count of statement errors.
	Errors atomic.Int64
}

// Snapshot returns a point-in-time copy of the statistics.
func (s *QueryStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// StatsSnapshot is a point-in-time view of QueryStats.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// SlowQueryHook is called when a statement exceeds the slow threshold.
type SlowQueryHook func(ctx context.Context, query string, args []any, took time.Duration)

// StatsDriver wraps a dialect.Driver with execution statistics and
// slow-statement detection. It adds no retry and never alters results.
type StatsDriver struct {
	dialect.Driver
	stats     QueryStats
	threshold time.Duration
	hook      SlowQueryHook
	log       *slog.Logger
}

// WithStats wraps drv with statistics collection. Statements slower than
// threshold are counted, logged through log (slog.Default when nil) and
// reported to hook when one is set. A zero threshold disables slow
// detection.
func WithStats(drv dialect.Driver, threshold time.Duration, hook SlowQueryHook, log *slog.Logger) *StatsDriver {
	if log == nil {
		log = slog.Default()
	}
	return &StatsDriver{Driver: drv, threshold: threshold, hook: hook, log: log}
}

// Stats returns a snapshot of the collected statistics.
func (d *StatsDriver) Stats() StatsSnapshot { return d.stats.Snapshot() }

// Exec delegates to the underlying driver and records timing.
func (d *StatsDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.stats.TotalExecs.Add(1)
	d.observe(ctx, query, args, time.Since(start), err)
	return err
}

// Query delegates to the underlying driver and records timing.
func (d *StatsDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.stats.TotalQueries.Add(1)
	d.observe(ctx, query, args, time.Since(start), err)
	return err
}

func (d *StatsDriver) observe(ctx context.Context, query string, args any, took time.Duration, err error) {
	d.stats.TotalDuration.Add(int64(took))
	if err != nil {
		d.stats.Errors.Add(1)
	}
	if d.threshold <= 0 || took < d.threshold {
		return
	}
	d.stats.SlowQueries.Add(1)
	d.log.LogAttrs(ctx, slog.LevelWarn, "dialect/sql: slow statement",
		slog.String("query", query),
		slog.Duration("took", took),
	)
	if d.hook != nil {
		argv, _ := args.([]any)
		d.hook(ctx, query, argv, took)
	}
}
