// Package sql provides a typed SQL expression algebra, the dialect
// capability tables that map it to database-specific syntax, and the thin
// driver adapter the finished statements are submitted through.
//
// # Expressions
//
// Expr[T] is an immutable SQL fragment carrying the static native type T.
// Expressions are built from column references, lifted literals and
// operation applications, and render to a parameterized query:
//
//	d := sql.SQLite()
//	name := sql.C[string]("name")
//	pred := sql.Compare(d, name).EQ(sql.String("ada"))
//	query, args, err := pred.Query(d)
//	// query: (name = ?)   args: ["ada"]
//
// # Capability sets
//
// Operations legal for an expression are requested explicitly for its
// static type:
//
//	sql.Numbers(d, x).Add(y)          // arithmetic
//	sql.Bits(d, x).And(y)             // integer bitwise ops
//	d.Strings(s).Concat(t)            // string ops
//	d.Bools(p).And(q)                 // boolean connectives
//	sql.Compare(d, x).In(a, b)        // comparisons
//	sql.Aggregates(d, x).Sum()        // aggregate functions
//
// Aggregates accept a window specification:
//
//	sum := sql.Aggregates(d, amount).Sum()
//	sql.Over(sum).PartitionBy(dept).OrderBy(hired, sql.OrderAsc).Build()
//
// # Dialects
//
// Base() is the complete ANSI-flavored dialect; SQLite(), HSQLDB() and
// Postgres() derive from it. A variant overrides only the named
// operations; everything else, type mappers included, renders exactly as
// in its parent:
//
//	sql.Bits(sql.HSQLDB(), a).And(b)  // BITAND(a, b)
//	sql.Bits(sql.Base(), a).And(b)    // (a & b)
//
// Requesting an operation the active dialect chain cannot render yields an
// expression carrying an UnsupportedOpError, surfaced by Err and Query
// before any SQL is submitted.
//
// # Execution boundary
//
// Driver wraps database/sql. Args implements the sqltype.Binder parameter
// sink; ScanRow adapts a fetched row to sqltype.Row. Statement execution,
// transactions and connection lifecycle stay with the caller.
package sql
