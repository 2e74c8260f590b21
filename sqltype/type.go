package sqltype

// Type is a SQL column-type tag mirroring the standard SQL type categories.
type Type int

const (
	TypeInvalid Type = iota
	TypeBool
	TypeSmallInt
	TypeInteger
	TypeBigInt
	TypeDouble
	TypeDecimal
	TypeVarchar
	TypeVarbinary
	TypeDate
	TypeTime
	TypeTimeTZ
	TypeTimestamp
	TypeTimestampTZ
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:     "invalid",
	TypeBool:        "BOOLEAN",
	TypeSmallInt:    "SMALLINT",
	TypeInteger:     "INTEGER",
	TypeBigInt:      "BIGINT",
	TypeDouble:      "DOUBLE PRECISION",
	TypeDecimal:     "DECIMAL",
	TypeVarchar:     "VARCHAR",
	TypeVarbinary:   "VARBINARY",
	TypeDate:        "DATE",
	TypeTime:        "TIME",
	TypeTimeTZ:      "TIME WITH TIME ZONE",
	TypeTimestamp:   "TIMESTAMP",
	TypeTimestampTZ: "TIMESTAMP WITH TIME ZONE",
}

// String returns the SQL name of the type. It is also the default text used
// by dialects when rendering CAST expressions.
func (t Type) String() string {
	if !t.Valid() {
		return typeNames[TypeInvalid]
	}
	return typeNames[t]
}

// Valid reports if the type is a known column-type tag.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}
