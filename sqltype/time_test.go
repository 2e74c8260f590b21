package sqltype

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampShapeTolerance(t *testing.T) {
	// An instant on a millisecond boundary, so the epoch-integer shape
	// carries it exactly.
	want := time.Date(2024, time.March, 15, 10, 30, 45, 500_000_000, time.UTC)
	shapes := []struct {
		name string
		raw  any
	}{
		{"epoch millis", want.UnixMilli()},
		{"rfc3339 text", want.Format(time.RFC3339Nano)},
		{"offset text", want.In(time.FixedZone("CET", 3600)).Format("2006-01-02 15:04:05.999999999Z07:00")},
		{"native utc", want},
		{"native zoned", want.In(time.FixedZone("JST", 9*3600))},
		{"text bytes", []byte(want.Format(time.RFC3339Nano))},
	}
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Timestamp().Decode(fakeRow{tt.raw}, 0)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "decoded %v, want instant %v", got, want)
		})
	}
}

func TestTimestampNaiveTextUsesLocalZone(t *testing.T) {
	got, err := Timestamp().Decode(fakeRow{"2024-03-15 10:30:45"}, 0)
	require.NoError(t, err)
	want := time.Date(2024, time.March, 15, 10, 30, 45, 0, time.Local)
	assert.True(t, got.Equal(want))
}

func TestTimestampRoundTripIsZoneConsistent(t *testing.T) {
	in := time.Date(2023, time.July, 1, 23, 59, 59, 123_000_000, time.FixedZone("NPT", 5*3600+45*60))
	got := roundTrip(t, Timestamp(), in)
	// Equality is on the instant, not the display zone.
	assert.True(t, got.Equal(in))
}

func TestTimestampDecodeExhaustion(t *testing.T) {
	for _, raw := range []any{true, 1.5, "not a timestamp", []byte("nope")} {
		_, err := Timestamp().Decode(fakeRow{raw}, 0)
		require.Error(t, err, "shape %T must not decode", raw)
		assert.True(t, IsTypeMismatch(err))
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := civil.Date{Year: 2024, Month: time.February, Day: 29}
	assert.Equal(t, d, roundTrip(t, Date(), d))
}

func TestDateDecodeShapes(t *testing.T) {
	want := civil.Date{Year: 2021, Month: time.December, Day: 24}
	shapes := []any{
		want,
		"2021-12-24",
		[]byte("2021-12-24"),
		time.Date(2021, time.December, 24, 18, 0, 0, 0, time.UTC),
	}
	for _, raw := range shapes {
		got, err := Date().Decode(fakeRow{raw}, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "shape %T", raw)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	v := civil.Time{Hour: 23, Minute: 59, Second: 58, Nanosecond: 250_000_000}
	assert.Equal(t, v, roundTrip(t, Time(), v))
}

func TestDateTimeRoundTrip(t *testing.T) {
	v := civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.March, Day: 15},
		Time: civil.Time{Hour: 10, Minute: 30, Second: 45},
	}
	assert.Equal(t, v, roundTrip(t, DateTime(), v))
}

func TestDateTimeDecodeSpaceSeparated(t *testing.T) {
	got, err := DateTime().Decode(fakeRow{"2024-03-15 10:30:45"}, 0)
	require.NoError(t, err)
	want := civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.March, Day: 15},
		Time: civil.Time{Hour: 10, Minute: 30, Second: 45},
	}
	assert.Equal(t, want, got)
}

func TestTimeTZRoundTrip(t *testing.T) {
	in := time.Date(1970, time.January, 1, 9, 15, 30, 0, time.FixedZone("", 2*3600))
	got := roundTrip(t, TimeTZ(), in)
	assert.True(t, got.Equal(in))
	h, m, s := got.Clock()
	assert.Equal(t, [3]int{9, 15, 30}, [3]int{h, m, s})
	_, offset := got.Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestTimeTZNormalizesDate(t *testing.T) {
	in := time.Date(2024, time.June, 1, 9, 15, 30, 0, time.FixedZone("", -3600))
	got, err := TimeTZ().Decode(fakeRow{in}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1970, got.Year())
	h, _, _ := got.Clock()
	assert.Equal(t, 9, h)
}
