package sql

import (
	"errors"
	"strconv"
	"strings"
)

// Builder is the low-level rendering buffer: it accumulates SQL text and
// bound values, quotes identifiers through the dialect, and converts '?'
// placeholders to the dialect's positional style when the query is
// finalized. Rendering is side-effect-free; the builder never touches a
// database.
type Builder struct {
	d    *Dialect
	sb   strings.Builder
	args []any
	errs []error
}

// NewBuilder returns a builder rendering for the given dialect.
func NewBuilder(d *Dialect) *Builder {
	return &Builder{d: d}
}

// WriteString appends raw SQL text.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// Ident appends a dialect-quoted identifier. Invalid identifiers are
// recorded as errors and surfaced by Query.
func (b *Builder) Ident(name string) *Builder {
	if !isValidIdentifier(name) {
		b.errs = append(b.errs, errors.New("dialect/sql: invalid identifier "+strconv.Quote(name)))
		return b
	}
	b.sb.WriteString(b.d.Quote(name))
	return b
}

// Arg appends a placeholder bound to v.
func (b *Builder) Arg(v any) *Builder {
	b.sb.WriteByte('?')
	b.args = append(b.args, v)
	return b
}

// WriteExpr appends an expression fragment with its bound values.
func (b *Builder) WriteExpr(e Expression) *Builder {
	f := e.fragment()
	if f.err != nil {
		b.errs = append(b.errs, f.err)
		return b
	}
	b.sb.WriteString(f.sql)
	b.args = append(b.args, f.args...)
	return b
}

// AddError records an error to be surfaced by Query.
func (b *Builder) AddError(err error) *Builder {
	b.errs = append(b.errs, err)
	return b
}

// Query finalizes the buffer: it returns the SQL text in the dialect's
// placeholder style together with the ordered parameter list, or the first
// construction errors if any were recorded.
func (b *Builder) Query() (string, []any, error) {
	if len(b.errs) > 0 {
		return "", nil, errors.Join(b.errs...)
	}
	query := b.sb.String()
	if b.d.placeholder == Dollar {
		query = dollarPlaceholders(query)
	}
	return query, append([]any(nil), b.args...), nil
}

// dollarPlaceholders rewrites '?' placeholders as $1, $2, ...
func dollarPlaceholders(query string) string {
	var (
		sb strings.Builder
		n  int
	)
	sb.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			sb.WriteByte(query[i])
			continue
		}
		n++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}
