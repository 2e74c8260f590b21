package sqltype

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow is an in-memory positional row.
type fakeRow []any

func (r fakeRow) Value(idx int) (any, error) {
	if idx < 0 || idx >= len(r) {
		return nil, fmt.Errorf("column index %d out of range", idx)
	}
	return r[idx], nil
}

// fakeBinder records every set call so tests can replay the written value
// back through decode.
type fakeBinder struct {
	vals  map[int]any
	nulls map[int]Type
}

func newFakeBinder() *fakeBinder {
	return &fakeBinder{vals: map[int]any{}, nulls: map[int]Type{}}
}

func (b *fakeBinder) SetBool(idx int, v bool) error       { b.vals[idx] = v; return nil }
func (b *fakeBinder) SetInt64(idx int, v int64) error     { b.vals[idx] = v; return nil }
func (b *fakeBinder) SetFloat64(idx int, v float64) error { b.vals[idx] = v; return nil }
func (b *fakeBinder) SetString(idx int, v string) error   { b.vals[idx] = v; return nil }
func (b *fakeBinder) SetBytes(idx int, v []byte) error    { b.vals[idx] = v; return nil }
func (b *fakeBinder) SetTime(idx int, v time.Time) error  { b.vals[idx] = v; return nil }
func (b *fakeBinder) SetValue(idx int, v any) error       { b.vals[idx] = v; return nil }

func (b *fakeBinder) SetNull(idx int, t Type) error {
	b.vals[idx] = nil
	b.nulls[idx] = t
	return nil
}

// roundTrip encodes v, feeds the written value back as a row and decodes.
func roundTrip[T any](t *testing.T, m Mapper[T], v T) T {
	t.Helper()
	b := newFakeBinder()
	require.NoError(t, m.Encode(b, 0, v))
	got, err := m.Decode(fakeRow{b.vals[0]}, 0)
	require.NoError(t, err)
	return got
}

func TestScalarRoundTrip(t *testing.T) {
	assert.Equal(t, true, roundTrip(t, Bool(), true))
	assert.Equal(t, false, roundTrip(t, Bool(), false))
	assert.Equal(t, int16(-42), roundTrip(t, Int16(), -42))
	assert.Equal(t, int32(1<<30), roundTrip(t, Int32(), 1<<30))
	assert.Equal(t, int64(1<<62), roundTrip(t, Int64(), 1<<62))
	assert.Equal(t, 3.25, roundTrip(t, Float64(), 3.25))
	assert.Equal(t, "héllo", roundTrip(t, String(), "héllo"))
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, roundTrip(t, Bytes(), []byte{0x00, 0xff, 0x10}))
}

func TestScalarColumnTags(t *testing.T) {
	tests := []struct {
		mapper ColumnMapper
		column Type
		cast   string
	}{
		{Bool(), TypeBool, "BOOLEAN"},
		{Int16(), TypeSmallInt, "SMALLINT"},
		{Int32(), TypeInteger, "INTEGER"},
		{Int64(), TypeBigInt, "BIGINT"},
		{Float64(), TypeDouble, "DOUBLE PRECISION"},
		{Decimal(), TypeDecimal, "DECIMAL"},
		{String(), TypeVarchar, "VARCHAR"},
		{Bytes(), TypeVarbinary, "VARBINARY"},
		{UUID(), TypeVarbinary, "VARBINARY"},
		{Timestamp(), TypeTimestampTZ, "TIMESTAMP WITH TIME ZONE"},
	}
	for _, tt := range tests {
		t.Run(tt.column.String(), func(t *testing.T) {
			assert.Equal(t, tt.column, tt.mapper.Column())
			assert.Equal(t, tt.cast, tt.mapper.CastType())
		})
	}
}

func TestMapperOptions(t *testing.T) {
	m := UUID(WithColumn(TypeVarchar), WithCastType("UUID"))
	assert.Equal(t, TypeVarchar, m.Column())
	assert.Equal(t, "UUID", m.CastType())
}

func TestDecodeShapeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		decode func(Row) error
	}{
		{"bool from string", func(r Row) error { _, err := Bool().Decode(r, 0); return err }},
		{"int64 from struct", func(r Row) error { _, err := Int64().Decode(r, 0); return err }},
		{"string from int", func(r Row) error { _, err := String().Decode(r, 0); return err }},
		{"uuid from float", func(r Row) error { _, err := UUID().Decode(r, 0); return err }},
		{"timestamp from bool", func(r Row) error { _, err := Timestamp().Decode(r, 0); return err }},
	}
	rows := []fakeRow{
		{"yes"},
		{struct{}{}},
		{int64(7)},
		{1.5},
		{true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(rows[i])
			require.Error(t, err)
			assert.True(t, IsTypeMismatch(err))
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	_, err := Int64().Decode(fakeRow{"nope"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int64")
	assert.Contains(t, err.Error(), "BIGINT")
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "-1.5", "123456789.123456789", "0.0001"} {
		v := decimal.RequireFromString(s)
		got := roundTrip(t, Decimal(), v)
		assert.True(t, got.Equal(v), "round trip of %s returned %s", v, got)
	}
}

func TestDecimalDecodeShapes(t *testing.T) {
	want := decimal.RequireFromString("12.5")
	for _, raw := range []any{"12.5", []byte("12.5"), 12.5, want} {
		got, err := Decimal().Decode(fakeRow{raw}, 0)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "shape %T decoded to %s", raw, got)
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	// The native object and its canonical string form decode identically.
	fromNative, err := UUID().Decode(fakeRow{id}, 0)
	require.NoError(t, err)
	fromString, err := UUID().Decode(fakeRow{id.String()}, 0)
	require.NoError(t, err)
	assert.Equal(t, id, fromNative)
	assert.Equal(t, id, fromString)

	// Raw 16-byte and textual byte shapes.
	fromRaw, err := UUID().Decode(fakeRow{id[:]}, 0)
	require.NoError(t, err)
	fromText, err := UUID().Decode(fakeRow{[]byte(id.String())}, 0)
	require.NoError(t, err)
	assert.Equal(t, id, fromRaw)
	assert.Equal(t, id, fromText)
}

func TestNullableRoundTrip(t *testing.T) {
	m := Nullable(String())
	assert.Equal(t, TypeVarchar, m.Column())

	// Absent round-trips to absent, and records the inner column tag.
	b := newFakeBinder()
	require.NoError(t, m.Encode(b, 0, nil))
	assert.Equal(t, TypeVarchar, b.nulls[0])
	got, err := m.Decode(fakeRow{b.vals[0]}, 0)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Present delegates to the inner mapper.
	v := "present"
	got = roundTrip(t, m, &v)
	require.NotNil(t, got)
	assert.Equal(t, "present", *got)
}

type status string

func parseStatus(s string) (status, error) {
	switch s {
	case "ACTIVE", "INACTIVE", "PENDING":
		return status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func TestEnumMapper(t *testing.T) {
	m := Enum(parseStatus, func(s status) string { return string(s) })
	assert.Equal(t, TypeVarchar, m.Column())

	// The mapping is referentially stable across repeated decodes.
	for range 3 {
		got, err := m.Decode(fakeRow{"ACTIVE"}, 0)
		require.NoError(t, err)
		assert.Equal(t, status("ACTIVE"), got)
	}

	got := roundTrip(t, m, status("PENDING"))
	assert.Equal(t, status("PENDING"), got)

	_, err := m.Decode(fakeRow{"BOGUS"}, 0)
	require.Error(t, err)
	assert.True(t, IsTypeMismatch(err))
}

func TestRowErrorPropagates(t *testing.T) {
	_, err := Int64().Decode(fakeRow{}, 5)
	require.Error(t, err)
	assert.False(t, IsTypeMismatch(err), "cursor errors pass through unwrapped")
}
