package sqltype

import (
	"time"

	"cloud.google.com/go/civil"
)

// timestampLayouts are the textual shapes accepted by the timestamp
// decoders, tried in order. Layouts without a zone designator are parsed
// in the system default zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseTimestamp probes the textual timestamp layouts in order.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Timestamp returns the mapper for zone-aware instants
// (TIMESTAMP WITH TIME ZONE column). Drivers return such columns in several
// shapes; decode probes, in order: an epoch-millisecond integer, a textual
// timestamp, a native time.Time, and raw textual bytes. All shapes carrying
// the same instant decode to the same instant.
//
// Encode normalizes the value to UTC before writing so round-trips are
// zone-consistent. Equality of round-tripped values is defined on the
// instant, not on the display zone.
func Timestamp(opts ...Option) Mapper[time.Time] {
	s := newSettings(TypeTimestampTZ, opts)
	return mapper[time.Time]{
		settings: s,
		decode: func(v any) (time.Time, error) {
			switch v := v.(type) {
			case int64:
				return time.UnixMilli(v), nil
			case string:
				if t, ok := parseTimestamp(v); ok {
					return t, nil
				}
				return decodeErr[time.Time](s, v)
			case time.Time:
				return v, nil
			case []byte:
				if t, ok := parseTimestamp(string(v)); ok {
					return t, nil
				}
				return decodeErr[time.Time](s, v)
			default:
				return decodeErr[time.Time](s, v)
			}
		},
		encode: func(b Binder, idx int, v time.Time) error {
			return b.SetTime(idx, v.UTC())
		},
	}
}

// Date returns the mapper for zone-naive calendar dates (DATE column).
func Date(opts ...Option) Mapper[civil.Date] {
	s := newSettings(TypeDate, opts)
	return mapper[civil.Date]{
		settings: s,
		decode: func(v any) (civil.Date, error) {
			switch v := v.(type) {
			case civil.Date:
				return v, nil
			case time.Time:
				return civil.DateOf(v), nil
			case string:
				d, err := civil.ParseDate(v)
				if err != nil {
					return decodeErr[civil.Date](s, v)
				}
				return d, nil
			case []byte:
				d, err := civil.ParseDate(string(v))
				if err != nil {
					return decodeErr[civil.Date](s, v)
				}
				return d, nil
			default:
				return decodeErr[civil.Date](s, v)
			}
		},
		encode: func(b Binder, idx int, v civil.Date) error {
			return b.SetString(idx, v.String())
		},
	}
}

// Time returns the mapper for zone-naive clock times (TIME column).
func Time(opts ...Option) Mapper[civil.Time] {
	s := newSettings(TypeTime, opts)
	return mapper[civil.Time]{
		settings: s,
		decode: func(v any) (civil.Time, error) {
			switch v := v.(type) {
			case civil.Time:
				return v, nil
			case time.Time:
				return civil.TimeOf(v), nil
			case string:
				t, err := civil.ParseTime(v)
				if err != nil {
					return decodeErr[civil.Time](s, v)
				}
				return t, nil
			case []byte:
				t, err := civil.ParseTime(string(v))
				if err != nil {
					return decodeErr[civil.Time](s, v)
				}
				return t, nil
			default:
				return decodeErr[civil.Time](s, v)
			}
		},
		encode: func(b Binder, idx int, v civil.Time) error {
			return b.SetString(idx, v.String())
		},
	}
}

// parseDateTime accepts both the T-separated civil form and the
// space-separated form drivers commonly emit.
func parseDateTime(s string) (civil.DateTime, bool) {
	if dt, err := civil.ParseDateTime(s); err == nil {
		return dt, true
	}
	if t, err := time.Parse("2006-01-02 15:04:05.999999999", s); err == nil {
		return civil.DateTimeOf(t), true
	}
	return civil.DateTime{}, false
}

// DateTime returns the mapper for zone-naive timestamps (TIMESTAMP column).
func DateTime(opts ...Option) Mapper[civil.DateTime] {
	s := newSettings(TypeTimestamp, opts)
	return mapper[civil.DateTime]{
		settings: s,
		decode: func(v any) (civil.DateTime, error) {
			switch v := v.(type) {
			case civil.DateTime:
				return v, nil
			case time.Time:
				return civil.DateTimeOf(v), nil
			case string:
				if dt, ok := parseDateTime(v); ok {
					return dt, nil
				}
				return decodeErr[civil.DateTime](s, v)
			case []byte:
				if dt, ok := parseDateTime(string(v)); ok {
					return dt, nil
				}
				return decodeErr[civil.DateTime](s, v)
			default:
				return decodeErr[civil.DateTime](s, v)
			}
		},
		encode: func(b Binder, idx int, v civil.DateTime) error {
			return b.SetString(idx, v.String())
		},
	}
}

// timeTZLayouts are the textual shapes accepted for offset clock times.
var timeTZLayouts = []string{
	"15:04:05.999999999Z07:00",
	"15:04:05Z07:00",
}

// normClockTime pins an offset clock time to the epoch day so that values
// compare on clock and offset alone.
func normClockTime(t time.Time) time.Time {
	h, m, sec := t.Clock()
	return time.Date(1970, time.January, 1, h, m, sec, t.Nanosecond(), t.Location())
}

// TimeTZ returns the mapper for offset-aware clock times
// (TIME WITH TIME ZONE column). The native representation is a time.Time
// pinned to the epoch day, carrying the clock value and the zone offset.
func TimeTZ(opts ...Option) Mapper[time.Time] {
	s := newSettings(TypeTimeTZ, opts)
	return mapper[time.Time]{
		settings: s,
		decode: func(v any) (time.Time, error) {
			switch v := v.(type) {
			case time.Time:
				return normClockTime(v), nil
			case string:
				for _, layout := range timeTZLayouts {
					if t, err := time.Parse(layout, v); err == nil {
						return normClockTime(t), nil
					}
				}
				return decodeErr[time.Time](s, v)
			case []byte:
				for _, layout := range timeTZLayouts {
					if t, err := time.Parse(layout, string(v)); err == nil {
						return normClockTime(t), nil
					}
				}
				return decodeErr[time.Time](s, v)
			default:
				return decodeErr[time.Time](s, v)
			}
		},
		encode: func(b Binder, idx int, v time.Time) error {
			return b.SetString(idx, v.Format("15:04:05.999999999Z07:00"))
		},
	}
}
