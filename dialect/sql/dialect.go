package sql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/syssam/sqlcore/dialect"
	"github.com/syssam/sqlcore/sqltype"
)

// Placeholder is the positional parameter style of a dialect.
type Placeholder int

const (
	// Question renders parameters as '?' (SQLite, HSQLDB, MySQL).
	Question Placeholder = iota
	// Dollar renders parameters as $1, $2, ... (PostgreSQL).
	Dollar
)

// Dialect is a fully-resolved capability bundle for one database family:
// a registry of type mappers plus a rendering table mapping every Op to
// its SQL form. Variants are built with Derive and substitute individual
// entries; resolution walks the derivation chain, so everything not
// overridden renders exactly as in the parent.
//
// Dialects are immutable after construction and safe for unrestricted
// concurrent use.
type Dialect struct {
	name        string
	parent      *Dialect
	funcs       map[Op]RenderFunc
	types       *sqltype.Registry
	placeholder Placeholder
	quoteIdent  func(string) string
}

// DialectOption configures a dialect under construction.
type DialectOption func(*Dialect)

// Override substitutes the rendering of a single operation.
func Override(op Op, f RenderFunc) DialectOption {
	return func(d *Dialect) { d.funcs[op] = f }
}

// WithTypes replaces the dialect's type-mapper registry. The registry must
// cover the complete core scalar set.
func WithTypes(reg *sqltype.Registry) DialectOption {
	return func(d *Dialect) { d.types = reg }
}

// WithPlaceholder sets the positional parameter style.
func WithPlaceholder(p Placeholder) DialectOption {
	return func(d *Dialect) { d.placeholder = p }
}

// WithQuoting sets the identifier quoting function.
func WithQuoting(quote func(string) string) DialectOption {
	return func(d *Dialect) { d.quoteIdent = quote }
}

// New constructs a base dialect seeded with the default operation table
// and the complete default mapper registry. A base dialect is always fully
// concrete; New panics if a registry supplied via WithTypes is missing a
// core mapper, since that is a construction bug, not a runtime condition.
func New(name string, opts ...DialectOption) *Dialect {
	d := &Dialect{
		name:       name,
		funcs:      defaultOps(),
		types:      sqltype.NewRegistry(),
		quoteIdent: quoteANSI,
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.types.Complete(); err != nil {
		panic(err)
	}
	return d
}

// Derive returns a named variant of d. The variant starts with an empty
// override table: every operation and type mapper not overridden resolves
// through d, transitively.
func (d *Dialect) Derive(name string, opts ...DialectOption) *Dialect {
	v := &Dialect{
		name:        name,
		parent:      d,
		funcs:       make(map[Op]RenderFunc),
		types:       d.types,
		placeholder: d.placeholder,
		quoteIdent:  d.quoteIdent,
	}
	for _, opt := range opts {
		opt(v)
	}
	if err := v.types.Complete(); err != nil {
		panic(err)
	}
	return v
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return d.name }

// Types returns the dialect's type-mapper registry.
func (d *Dialect) Types() *sqltype.Registry { return d.types }

// Quote quotes an identifier for this dialect.
func (d *Dialect) Quote(ident string) string { return d.quoteIdent(ident) }

// Supports reports whether the dialect resolves a rendering for op.
func (d *Dialect) Supports(op Op) bool {
	_, err := d.render(op)
	return err == nil
}

// render resolves the RenderFunc for op: own table first, then the parent
// chain. Exhaustion is an UnsupportedOpError.
func (d *Dialect) render(op Op) (RenderFunc, error) {
	for cur := d; cur != nil; cur = cur.parent {
		if f, ok := cur.funcs[op]; ok {
			return f, nil
		}
	}
	return nil, &UnsupportedOpError{Dialect: d.name, Op: op}
}

// apply resolves and applies an operation, propagating operand errors
// first so the earliest construction failure wins.
func apply[T any](d *Dialect, op Op, operands ...frag) Expr[T] {
	for _, o := range operands {
		if o.err != nil {
			return Expr[T]{frag{err: o.err}}
		}
	}
	f, err := d.render(op)
	if err != nil {
		return Expr[T]{frag{err: err}}
	}
	return Expr[T]{f(operands...)}
}

// Cast renders a CAST of x to the column type registered for T, using the
// registry's dialect-specific cast text.
func Cast[T any](d *Dialect, x Expression) Expr[T] {
	f := x.fragment()
	if f.err != nil {
		return Expr[T]{frag{err: f.err}}
	}
	cast, err := sqltype.CastTypeFor[T](d.types)
	if err != nil {
		return Expr[T]{frag{err: err}}
	}
	return Expr[T]{frag{sql: "CAST(" + f.sql + " AS " + cast + ")", args: f.args}}
}

// quoteANSI double-quotes an identifier, doubling embedded quotes.
func quoteANSI(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Built-in dialects. All of them are immutable package-level values;
// Derive them to customize.
var (
	baseDialect = New("ansi")

	sqliteDialect = baseDialect.Derive(dialect.SQLite,
		Override(OpIndexOf, pattern("INSTR({0}, {1})")),
		Override(OpLTrim, pattern("LTRIM({0}, {1})")),
		Override(OpRTrim, pattern("RTRIM({0}, {1})")),
	)

	// HSQLDB chains off the SQLite family: it keeps INSTR-style index-of
	// and two-argument trims, and replaces the numeric bit operators,
	// which HSQLDB lacks in infix form, with named functions. Glob
	// becomes a two-argument function returning an integer match result.
	hsqldbDialect = sqliteDialect.Derive(dialect.HSQLDB,
		Override(OpGlob, pattern("GLOB({1}, {0})")),
		Override(OpBitAnd, call("BITAND")),
		Override(OpBitOr, call("BITOR")),
		Override(OpBitXor, call("BITXOR")),
		Override(OpBitNot, call("BITNOT")),
		Override(OpNeg, prefix("-")),
	)

	postgresDialect = baseDialect.Derive(dialect.Postgres,
		WithPlaceholder(Dollar),
		WithQuoting(pq.QuoteIdentifier),
	)
)

// Base returns the ANSI-flavored base dialect.
func Base() *Dialect { return baseDialect }

// SQLite returns the SQLite-family dialect.
func SQLite() *Dialect { return sqliteDialect }

// HSQLDB returns the HSQLDB dialect, derived from the SQLite family.
func HSQLDB() *Dialect { return hsqldbDialect }

// Postgres returns the PostgreSQL dialect.
func Postgres() *Dialect { return postgresDialect }

// UnsupportedOpError is returned when a dialect chain resolves no rendering
// for an operation. It is a construction-time failure: the error is carried
// by the produced expression and surfaced before any SQL is submitted.
type UnsupportedOpError struct {
	Dialect string
	Op      Op
}

// Error returns the error string.
func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("dialect/sql: dialect %q has no rendering for %s", e.Dialect, e.Op)
}

// IsUnsupportedOp returns true if the error is an UnsupportedOpError.
func IsUnsupportedOp(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedOpError
	return errors.As(err, &e)
}

// renderError reports a malformed pattern/operand pairing. It indicates a
// dialect table bug rather than user input.
type renderError struct {
	pattern  string
	operands int
}

// Error returns the error string.
func (e *renderError) Error() string {
	return fmt.Sprintf("dialect/sql: pattern %q cannot render %d operands", e.pattern, e.operands)
}
