package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderComposition(t *testing.T) {
	d := Base()
	pred := Compare(d, C[string]("name")).EQ(String("ada"))
	b := NewBuilder(d).
		WriteString("SELECT ").
		Ident("name").
		WriteString(" FROM ").
		Ident("users").
		WriteString(" WHERE ").
		WriteExpr(pred)
	q, args, err := b.Query()
	require.NoError(t, err)
	assert.Equal(t, `SELECT "name" FROM "users" WHERE (name = ?)`, q)
	assert.Equal(t, []any{"ada"}, args)
}

func TestBuilderIdentQuoting(t *testing.T) {
	q, _, err := NewBuilder(Postgres()).Ident("user").Query()
	require.NoError(t, err)
	assert.Equal(t, `"user"`, q)

	_, _, err = NewBuilder(Base()).Ident("drop table; --").Query()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier")
}

func TestBuilderArgs(t *testing.T) {
	b := NewBuilder(Base()).WriteString("VALUES (").Arg(1).WriteString(", ").Arg("x").WriteString(")")
	q, args, err := b.Query()
	require.NoError(t, err)
	assert.Equal(t, "VALUES (?, ?)", q)
	assert.Equal(t, []any{1, "x"}, args)
}

func TestDollarPlaceholderNumbering(t *testing.T) {
	b := NewBuilder(Postgres()).
		WriteString("INSERT INTO t (a, b, c) VALUES (").
		Arg(1).WriteString(", ").Arg(2).WriteString(", ").Arg(3).
		WriteString(")")
	q, args, err := b.Query()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)", q)
	assert.Len(t, args, 3)
}

func TestBuilderCollectsAllErrors(t *testing.T) {
	bad := C[string]("no good")
	b := NewBuilder(Base()).WriteExpr(bad).Ident("also bad")
	_, _, err := b.Query()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid column identifier")
	assert.Contains(t, err.Error(), "invalid identifier")
}
