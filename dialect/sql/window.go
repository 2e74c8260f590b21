package sql

import (
	"strconv"
	"strings"
)

// OrderDirection is the sort direction of a window ORDER BY term.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// Bound is one endpoint of a window frame.
type Bound struct {
	sql string
}

// Frame bound constructors.
var (
	UnboundedPreceding = Bound{sql: "UNBOUNDED PRECEDING"}
	UnboundedFollowing = Bound{sql: "UNBOUNDED FOLLOWING"}
	CurrentRow         = Bound{sql: "CURRENT ROW"}
)

// Preceding returns a bound n rows/values before the current row.
func Preceding(n int) Bound {
	return Bound{sql: strconv.Itoa(n) + " PRECEDING"}
}

// Following returns a bound n rows/values after the current row.
func Following(n int) Bound {
	return Bound{sql: strconv.Itoa(n) + " FOLLOWING"}
}

type orderTerm struct {
	f   frag
	dir OrderDirection
}

// WindowBuilder decorates an aggregate expression with partition, order
// and frame metadata and renders the windowed form. Obtain it with Over;
// finish with Build.
type WindowBuilder[T any] struct {
	agg        frag
	partitions []frag
	orders     []orderTerm
	frame      string
	err        error
}

// Over starts a window specification for an aggregate expression.
func Over[T any](agg Expr[T]) *WindowBuilder[T] {
	return &WindowBuilder[T]{agg: agg.f, err: agg.f.err}
}

// PartitionBy appends partitioning expressions.
func (w *WindowBuilder[T]) PartitionBy(xs ...Expression) *WindowBuilder[T] {
	for _, x := range xs {
		f := x.fragment()
		if f.err != nil && w.err == nil {
			w.err = f.err
		}
		w.partitions = append(w.partitions, f)
	}
	return w
}

// OrderBy appends an ordering expression.
func (w *WindowBuilder[T]) OrderBy(x Expression, dir OrderDirection) *WindowBuilder[T] {
	f := x.fragment()
	if f.err != nil && w.err == nil {
		w.err = f.err
	}
	w.orders = append(w.orders, orderTerm{f: f, dir: dir})
	return w
}

// Rows sets a ROWS BETWEEN frame.
func (w *WindowBuilder[T]) Rows(lo, hi Bound) *WindowBuilder[T] {
	w.frame = "ROWS BETWEEN " + lo.sql + " AND " + hi.sql
	return w
}

// Range sets a RANGE BETWEEN frame.
func (w *WindowBuilder[T]) Range(lo, hi Bound) *WindowBuilder[T] {
	w.frame = "RANGE BETWEEN " + lo.sql + " AND " + hi.sql
	return w
}

// Build renders the windowed aggregate: "agg OVER (...)".
func (w *WindowBuilder[T]) Build() Expr[T] {
	if w.err != nil {
		return Expr[T]{frag{err: w.err}}
	}
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(w.agg.sql)
	args = append(args, w.agg.args...)
	sb.WriteString(" OVER (")
	var wrote bool
	if len(w.partitions) > 0 {
		sb.WriteString("PARTITION BY ")
		for i, p := range w.partitions {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.sql)
			args = append(args, p.args...)
		}
		wrote = true
	}
	if len(w.orders) > 0 {
		if wrote {
			sb.WriteByte(' ')
		}
		sb.WriteString("ORDER BY ")
		for i, o := range w.orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.f.sql)
			sb.WriteByte(' ')
			sb.WriteString(string(o.dir))
			args = append(args, o.f.args...)
		}
		wrote = true
	}
	if w.frame != "" {
		if wrote {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.frame)
	}
	sb.WriteByte(')')
	return Expr[T]{frag{sql: sb.String(), args: args}}
}
