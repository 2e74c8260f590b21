// Package dialect names the supported database families and defines the
// thin driver contract the rendering core hands its finished statements to.
//
// # Dialect Constants
//
// Each family is identified by a constant string:
//
//	dialect.SQLite   = "sqlite"
//	dialect.HSQLDB   = "hsqldb"
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//
// # Driver Interface
//
// The Driver interface is the execution boundary. This module renders
// parameterized SQL and decodes rows; executing statements, managing
// connections and transactions is the driver owner's concern:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The dialect/sql sub-package implements Driver on top of database/sql and
// carries the expression algebra, the dialect capability tables and the
// rendering machinery.
package dialect
