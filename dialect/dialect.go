package dialect

import (
	"context"
	"log/slog"
	"time"
)

// Database family identifiers.
const (
	SQLite   = "sqlite"
	HSQLDB   = "hsqldb"
	Postgres = "postgres"
	MySQL    = "mysql"
)

// ExecQuerier wraps the two operations a rendered statement can be
// submitted through.
type ExecQuerier interface {
	// Exec executes a statement that returns no rows. The args parameter
	// carries the ordered bind values ([]any) and v the optional
	// execution result receiver.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement and stores its cursor in v.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the database abstraction the execution layer implements.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx is a transaction-scoped driver.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

// DebugDriver wraps a Driver and logs every statement through slog before
// delegating. Intended for development; it adds no retry or suppression.
type DebugDriver struct {
	Driver
	log *slog.Logger
}

// Debug returns a DebugDriver logging to the given logger, or to
// slog.Default when nil.
func Debug(d Driver, log *slog.Logger) *DebugDriver {
	if log == nil {
		log = slog.Default()
	}
	return &DebugDriver{Driver: d, log: log}
}

// Exec logs the statement and delegates to the underlying driver.
func (d *DebugDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.log.LogAttrs(ctx, slog.LevelDebug, "dialect: exec",
		slog.String("query", query),
		slog.Any("args", args),
		slog.Duration("took", time.Since(start)),
	)
	return err
}

// Query logs the statement and delegates to the underlying driver.
func (d *DebugDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.log.LogAttrs(ctx, slog.LevelDebug, "dialect: query",
		slog.String("query", query),
		slog.Any("args", args),
		slog.Duration("took", time.Since(start)),
	)
	return err
}

// Tx starts a transaction on the underlying driver and wraps it with the
// same logger.
func (d *DebugDriver) Tx(ctx context.Context) (Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &debugTx{Tx: tx, log: d.log}, nil
}

type debugTx struct {
	Tx
	log *slog.Logger
}

func (d *debugTx) Exec(ctx context.Context, query string, args, v any) error {
	d.log.LogAttrs(ctx, slog.LevelDebug, "dialect: tx.exec",
		slog.String("query", query), slog.Any("args", args))
	return d.Tx.Exec(ctx, query, args, v)
}

func (d *debugTx) Query(ctx context.Context, query string, args, v any) error {
	d.log.LogAttrs(ctx, slog.LevelDebug, "dialect: tx.query",
		slog.String("query", query), slog.Any("args", args))
	return d.Tx.Query(ctx, query, args, v)
}
