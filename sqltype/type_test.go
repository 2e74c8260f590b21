package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		name string
	}{
		{TypeBool, "BOOLEAN"},
		{TypeSmallInt, "SMALLINT"},
		{TypeInteger, "INTEGER"},
		{TypeBigInt, "BIGINT"},
		{TypeDouble, "DOUBLE PRECISION"},
		{TypeDecimal, "DECIMAL"},
		{TypeVarchar, "VARCHAR"},
		{TypeVarbinary, "VARBINARY"},
		{TypeDate, "DATE"},
		{TypeTime, "TIME"},
		{TypeTimeTZ, "TIME WITH TIME ZONE"},
		{TypeTimestamp, "TIMESTAMP"},
		{TypeTimestampTZ, "TIMESTAMP WITH TIME ZONE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.typ.String())
		assert.True(t, tt.typ.Valid())
	}
	assert.Equal(t, "invalid", TypeInvalid.String())
	assert.False(t, TypeInvalid.Valid())
	assert.False(t, Type(999).Valid())
	assert.Equal(t, "invalid", Type(999).String())
}
