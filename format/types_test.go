package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldType_String(t *testing.T) {
	tests := []struct {
		typ  FieldType
		want string
	}{
		{FieldInt8, "Int8"},
		{FieldInt16, "Int16"},
		{FieldInt32, "Int32"},
		{FieldInt64, "Int64"},
		{FieldUint8, "Uint8"},
		{FieldUint16, "Uint16"},
		{FieldUint32, "Uint32"},
		{FieldUint64, "Uint64"},
		{FieldFloat32, "Float32"},
		{FieldFloat64, "Float64"},
		{FieldBool, "Bool"},
		{FieldString, "String"},
		{FieldBlob, "Blob"},
		{FieldType(0), "Unknown"},
		{FieldType(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestFieldType_FixedSize(t *testing.T) {
	require.Equal(t, 1, FieldInt8.FixedSize())
	require.Equal(t, 1, FieldUint8.FixedSize())
	require.Equal(t, 1, FieldBool.FixedSize())
	require.Equal(t, 2, FieldInt16.FixedSize())
	require.Equal(t, 2, FieldUint16.FixedSize())
	require.Equal(t, 4, FieldInt32.FixedSize())
	require.Equal(t, 4, FieldUint32.FixedSize())
	require.Equal(t, 4, FieldFloat32.FixedSize())
	require.Equal(t, 8, FieldInt64.FixedSize())
	require.Equal(t, 8, FieldUint64.FixedSize())
	require.Equal(t, 8, FieldFloat64.FixedSize())

	// Variable and unknown types have no fixed width.
	require.Equal(t, 0, FieldString.FixedSize())
	require.Equal(t, 0, FieldBlob.FixedSize())
	require.Equal(t, 0, FieldType(0).FixedSize())
}

func TestFieldType_Predicates(t *testing.T) {
	require.True(t, FieldString.IsVariable())
	require.True(t, FieldBlob.IsVariable())
	require.False(t, FieldUint32.IsVariable())

	require.True(t, FieldInt8.IsValid())
	require.True(t, FieldBlob.IsValid())
	require.False(t, FieldType(0).IsValid())
	require.False(t, FieldType(14).IsValid())
}
