package sql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/syssam/sqlcore/dialect"
	"github.com/syssam/sqlcore/sqltype"
)

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores,
// dots for schema.name qualification).
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// Driver is a dialect.Driver implementation for SQL based databases.
type Driver struct {
	Conn
	dialect string
}

// NewDriver creates a new Driver with the given Conn and dialect.
func NewDriver(dialect string, c Conn) *Driver {
	return &Driver{dialect: dialect, Conn: c}
}

// Open wraps database/sql.Open and returns a dialect.Driver for it.
func Open(dialect, source string) (*Driver, error) {
	db, err := sql.Open(dialect, source)
	if err != nil {
		return nil, err
	}
	return NewDriver(dialect, Conn{db}), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(dialect string, db *sql.DB) *Driver {
	return NewDriver(dialect, Conn{db})
}

// DB returns the underlying *sql.DB instance.
func (d Driver) DB() *sql.DB {
	return d.ExecQuerier.(*sql.DB)
}

// Dialect implements the dialect.Dialect method.
func (d Driver) Dialect() string {
	// The driver may be registered under an instrumented name.
	for _, name := range []string{dialect.SQLite, dialect.HSQLDB, dialect.Postgres, dialect.MySQL} {
		if strings.HasPrefix(d.dialect, name) {
			return name
		}
	}
	return d.dialect
}

// Tx starts and returns a transaction.
func (d *Driver) Tx(ctx context.Context) (dialect.Tx, error) {
	return d.BeginTx(ctx, nil)
}

// BeginTx starts a transaction with options.
func (d *Driver) BeginTx(ctx context.Context, opts *TxOptions) (dialect.Tx, error) {
	tx, err := d.DB().BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Conn: Conn{tx},
		Tx:   tx,
	}, nil
}

// Close closes the underlying connection.
func (d *Driver) Close() error { return d.DB().Close() }

// Tx implements dialect.Tx interface.
type Tx struct {
	Conn
	driver.Tx
}

// ExecQuerier wraps the standard Exec and Query methods.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Conn implements dialect.ExecQuerier given ExecQuerier.
type Conn struct {
	ExecQuerier
}

// Exec implements the dialect.Exec method.
func (c Conn) Exec(ctx context.Context, query string, args, v any) error {
	argv, ok := args.([]any)
	if !ok {
		return fmt.Errorf("dialect/sql: invalid type %T. expect []any for args", args)
	}
	switch v := v.(type) {
	case nil:
		if _, err := c.ExecContext(ctx, query, argv...); err != nil {
			return fmt.Errorf("dialect/sql: exec: %w", err)
		}
	case *sql.Result:
		res, err := c.ExecContext(ctx, query, argv...)
		if err != nil {
			return fmt.Errorf("dialect/sql: exec: %w", err)
		}
		*v = res
	default:
		return fmt.Errorf("dialect/sql: invalid type %T. expect *sql.Result", v)
	}
	return nil
}

// Query implements the dialect.Query method.
func (c Conn) Query(ctx context.Context, query string, args, v any) error {
	vr, ok := v.(*Rows)
	if !ok {
		return fmt.Errorf("dialect/sql: invalid type %T. expect *sql.Rows", v)
	}
	argv, ok := args.([]any)
	if !ok {
		return fmt.Errorf("dialect/sql: invalid type %T. expect []any for args", args)
	}
	rows, err := c.QueryContext(ctx, query, argv...)
	if err != nil {
		return fmt.Errorf("dialect/sql: query: %w", err)
	}
	*vr = Rows{rows}
	return nil
}

var _ dialect.Driver = (*Driver)(nil)

type (
	// Rows wraps the sql.Rows to avoid locks copy.
	Rows struct{ ColumnScanner }
	// Result is an alias to sql.Result.
	Result = sql.Result
	// NullBool is an alias to sql.NullBool.
	NullBool = sql.NullBool
	// NullInt64 is an alias to sql.NullInt64.
	NullInt64 = sql.NullInt64
	// NullString is an alias to sql.NullString.
	NullString = sql.NullString
	// NullFloat64 is an alias to sql.NullFloat64.
	NullFloat64 = sql.NullFloat64
	// NullTime represents a time.Time that may be null.
	NullTime = sql.NullTime
	// TxOptions holds the transaction options to be used in DB.BeginTx.
	TxOptions = sql.TxOptions
)

// ColumnScanner is the interface that wraps the standard
// sql.Rows methods used for scanning database rows.
type ColumnScanner interface {
	Close() error
	ColumnTypes() ([]*sql.ColumnType, error)
	Columns() ([]string, error)
	Err() error
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
}

// Args is the positional parameter sink mappers encode into. It implements
// sqltype.Binder over a plain value slice whose final order matches the
// statement's placeholders; Values hands the collected slice to
// Exec/Query. Indexes are zero-based and the sink grows as needed.
type Args struct {
	vals []any
}

// NewArgs returns a sink pre-sized for n parameters.
func NewArgs(n int) *Args {
	return &Args{vals: make([]any, n)}
}

func (a *Args) set(idx int, v any) error {
	if idx < 0 {
		return fmt.Errorf("dialect/sql: parameter index %d out of range", idx)
	}
	for idx >= len(a.vals) {
		a.vals = append(a.vals, nil)
	}
	a.vals[idx] = v
	return nil
}

// SetBool implements sqltype.Binder.
func (a *Args) SetBool(idx int, v bool) error { return a.set(idx, v) }

// SetInt64 implements sqltype.Binder.
func (a *Args) SetInt64(idx int, v int64) error { return a.set(idx, v) }

// SetFloat64 implements sqltype.Binder.
func (a *Args) SetFloat64(idx int, v float64) error { return a.set(idx, v) }

// SetString implements sqltype.Binder.
func (a *Args) SetString(idx int, v string) error { return a.set(idx, v) }

// SetBytes implements sqltype.Binder.
func (a *Args) SetBytes(idx int, v []byte) error { return a.set(idx, v) }

// SetTime implements sqltype.Binder.
func (a *Args) SetTime(idx int, v time.Time) error { return a.set(idx, v) }

// SetValue implements sqltype.Binder.
func (a *Args) SetValue(idx int, v any) error { return a.set(idx, v) }

// SetNull implements sqltype.Binder. database/sql carries no declared type
// for NULL parameters, so the tag is dropped at this boundary.
func (a *Args) SetNull(idx int, _ sqltype.Type) error { return a.set(idx, nil) }

// Values returns the collected parameter slice in positional order.
func (a *Args) Values() []any { return a.vals }

var _ sqltype.Binder = (*Args)(nil)

// RowView adapts one scanned row of raw driver values to sqltype.Row.
type RowView []any

// Value implements sqltype.Row.
func (r RowView) Value(idx int) (any, error) {
	if idx < 0 || idx >= len(r) {
		return nil, fmt.Errorf("dialect/sql: column index %d out of range [0, %d)", idx, len(r))
	}
	return r[idx], nil
}

var _ sqltype.Row = RowView(nil)

// ScanRow reads the current row of the cursor into a RowView of raw driver
// values, leaving all type conversion to the mappers.
func ScanRow(cs ColumnScanner) (RowView, error) {
	cols, err := cs.Columns()
	if err != nil {
		return nil, err
	}
	raw := make(RowView, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := cs.Scan(ptrs...); err != nil {
		return nil, err
	}
	return raw, nil
}
