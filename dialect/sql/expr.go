package sql

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// frag is a rendered SQL fragment: text with '?' placeholders, the bound
// values in textual order, and a deferred construction error.
type frag struct {
	sql  string
	args []any
	err  error
}

// Expression is the type-erased view of Expr, used where the static scalar
// type does not matter (window partitions, builder composition).
type Expression interface {
	fragment() frag
}

// Expr is an immutable, renderable SQL fragment carrying the static native
// type T. Operations never mutate an expression; they compose new ones.
// Construction failures (unsupported operation, invalid identifier) are
// carried inside the expression and surfaced by Err and Query, before any
// SQL leaves the process.
type Expr[T any] struct {
	f frag
}

func (e Expr[T]) fragment() frag { return e.f }

// SQL returns the fragment text with '?' placeholders.
func (e Expr[T]) SQL() string { return e.f.sql }

// Args returns a copy of the ordered bound values.
func (e Expr[T]) Args() []any { return append([]any(nil), e.f.args...) }

// Err returns the deferred construction error, if any.
func (e Expr[T]) Err() error { return e.f.err }

// Query finalizes the expression for the given dialect, converting the
// placeholders to the dialect's positional style and returning the SQL
// text with its ordered parameter list.
func (e Expr[T]) Query(d *Dialect) (string, []any, error) {
	b := NewBuilder(d)
	b.WriteExpr(e)
	return b.Query()
}

// Value lifts a native literal into an expression bound as a parameter.
func Value[T any](v T) Expr[T] {
	return Expr[T]{frag{sql: "?", args: []any{v}}}
}

// Literal lifting helpers for the core scalar types.

// Bool lifts a boolean literal.
func Bool(v bool) Expr[bool] { return Value(v) }

// Int32 lifts a 32-bit integer literal.
func Int32(v int32) Expr[int32] { return Value(v) }

// Int64 lifts a 64-bit integer literal.
func Int64(v int64) Expr[int64] { return Value(v) }

// Float64 lifts a double-precision literal.
func Float64(v float64) Expr[float64] { return Value(v) }

// String lifts a string literal.
func String(v string) Expr[string] { return Value(v) }

// Decimal lifts an arbitrary-precision decimal literal.
func Decimal(v decimal.Decimal) Expr[decimal.Decimal] { return Value(v) }

// C returns a column reference expression of type T. The column name must
// be a plain identifier, optionally schema-qualified.
func C[T any](column string) Expr[T] {
	if !isValidIdentifier(column) {
		return Expr[T]{frag{err: fmt.Errorf("dialect/sql: invalid column identifier %q", column)}}
	}
	return Expr[T]{frag{sql: column}}
}

// Raw wraps an already rendered SQL fragment with '?' placeholders and its
// bound values. The caller asserts the fragment produces a value of type T.
func Raw[T any](sql string, args ...any) Expr[T] {
	return Expr[T]{frag{sql: sql, args: args}}
}
