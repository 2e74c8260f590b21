package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueLifting(t *testing.T) {
	e := String("ada")
	assert.Equal(t, "?", e.SQL())
	assert.Equal(t, []any{"ada"}, e.Args())
	require.NoError(t, e.Err())

	n := Int64(42)
	assert.Equal(t, []any{int64(42)}, n.Args())
}

func TestColumnRef(t *testing.T) {
	c := C[string]("users.name")
	require.NoError(t, c.Err())
	assert.Equal(t, "users.name", c.SQL())
	assert.Empty(t, c.Args())
}

func TestInvalidColumnRef(t *testing.T) {
	c := C[string]("na me; DROP TABLE users")
	require.Error(t, c.Err())

	// The error propagates through composition and surfaces at Query.
	d := Base()
	e := d.Strings(c).Upper()
	_, _, err := e.Query(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid column identifier")
}

func TestRawFragment(t *testing.T) {
	e := Raw[int64]("length(payload) - ?", 4)
	q, args, err := e.Query(Base())
	require.NoError(t, err)
	assert.Equal(t, "length(payload) - ?", q)
	assert.Equal(t, []any{4}, args)
}

func TestExprImmutability(t *testing.T) {
	d := Base()
	x := C[int64]("n")
	sum := Numbers(d, x).Add(Int64(1))
	// Composing did not change the source expression.
	assert.Equal(t, "n", x.SQL())
	assert.Equal(t, "(n + ?)", sum.SQL())

	// Mutating a returned args slice does not leak into the expression.
	args := sum.Args()
	args[0] = int64(99)
	assert.Equal(t, []any{int64(1)}, sum.Args())
}

func TestQueryPlaceholderStyles(t *testing.T) {
	x := C[string]("name")
	pred := Compare(Base(), x).EQ(String("ada"))

	q, args, err := pred.Query(Base())
	require.NoError(t, err)
	assert.Equal(t, "(name = ?)", q)
	assert.Equal(t, []any{"ada"}, args)

	// The same expression renders dollar placeholders under Postgres.
	pg := Compare(Postgres(), x).EQ(String("ada"))
	q, args, err = pg.Query(Postgres())
	require.NoError(t, err)
	assert.Equal(t, "(name = $1)", q)
	assert.Equal(t, []any{"ada"}, args)
}
