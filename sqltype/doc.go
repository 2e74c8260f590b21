// Package sqltype provides bidirectional codecs between native Go scalar
// values and their database column representations.
//
// Each scalar type is served by a Mapper that pairs a SQL column-type tag
// with a decode (row -> value) and encode (value -> statement parameter)
// operation:
//
//	m := sqltype.Int64()
//	v, err := m.Decode(row, 0)     // read column 0 as int64
//	err = m.Encode(args, 0, 42)    // bind parameter 0
//
// # Mappers
//
// The package covers the core scalar set:
//
//	sqltype.Bool()       // bool       <-> BOOLEAN
//	sqltype.Int16()      // int16      <-> SMALLINT
//	sqltype.Int32()      // int32      <-> INTEGER
//	sqltype.Int64()      // int64      <-> BIGINT
//	sqltype.Float64()    // float64    <-> DOUBLE PRECISION
//	sqltype.Decimal()    // decimal.Decimal <-> DECIMAL
//	sqltype.String()     // string     <-> VARCHAR
//	sqltype.Bytes()      // []byte     <-> VARBINARY
//	sqltype.UUID()       // uuid.UUID  <-> VARBINARY
//	sqltype.Date()       // civil.Date <-> DATE
//	sqltype.Time()       // civil.Time <-> TIME
//	sqltype.DateTime()   // civil.DateTime <-> TIMESTAMP
//	sqltype.Timestamp()  // time.Time  <-> TIMESTAMP WITH TIME ZONE
//	sqltype.TimeTZ()     // time.Time  <-> TIME WITH TIME ZONE
//
// # Wrappers
//
// Nullable wraps any mapper so that a nil pointer maps to SQL NULL:
//
//	m := sqltype.Nullable(sqltype.String())
//	m.Encode(args, 0, nil) // binds NULL
//
// Enum maps a textual column through a user supplied constructor:
//
//	m := sqltype.Enum(ParseStatus, Status.String)
//
// # Shape tolerance
//
// Database drivers disagree on the runtime shape of fetched values. Decode
// probes the accepted shapes for its type in a fixed order and fails with a
// DecodeError if none match. Timestamp decoding in particular accepts an
// epoch-millisecond integer, a textual timestamp, a time.Time, or the raw
// text bytes, and normalizes all of them to the same instant.
//
// Mappers are immutable and stateless; they are safe for concurrent use.
// The Row and Binder resources they operate on are owned by the caller.
package sqltype
