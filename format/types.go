package format

// FieldType identifies the wire type of a single record field.
// The numeric values are part of the binary format and must not change.
type FieldType uint16

const (
	FieldInt8    FieldType = 1  // FieldInt8 represents a signed 8-bit integer.
	FieldInt16   FieldType = 2  // FieldInt16 represents a signed 16-bit integer.
	FieldInt32   FieldType = 3  // FieldInt32 represents a signed 32-bit integer.
	FieldInt64   FieldType = 4  // FieldInt64 represents a signed 64-bit integer.
	FieldUint8   FieldType = 5  // FieldUint8 represents an unsigned 8-bit integer.
	FieldUint16  FieldType = 6  // FieldUint16 represents an unsigned 16-bit integer.
	FieldUint32  FieldType = 7  // FieldUint32 represents an unsigned 32-bit integer.
	FieldUint64  FieldType = 8  // FieldUint64 represents an unsigned 64-bit integer.
	FieldFloat32 FieldType = 9  // FieldFloat32 represents an IEEE 754 32-bit float.
	FieldFloat64 FieldType = 10 // FieldFloat64 represents an IEEE 754 64-bit float.
	FieldBool    FieldType = 11 // FieldBool represents a single-byte boolean (0 = false).
	FieldString  FieldType = 12 // FieldString represents a NUL-delimited UTF-8 string in the variable-data section.
	FieldBlob    FieldType = 13 // FieldBlob represents a fixed-span binary payload in the variable-data section.
)

func (t FieldType) String() string {
	switch t {
	case FieldInt8:
		return "Int8"
	case FieldInt16:
		return "Int16"
	case FieldInt32:
		return "Int32"
	case FieldInt64:
		return "Int64"
	case FieldUint8:
		return "Uint8"
	case FieldUint16:
		return "Uint16"
	case FieldUint32:
		return "Uint32"
	case FieldUint64:
		return "Uint64"
	case FieldFloat32:
		return "Float32"
	case FieldFloat64:
		return "Float64"
	case FieldBool:
		return "Bool"
	case FieldString:
		return "String"
	case FieldBlob:
		return "Blob"
	default:
		return "Unknown"
	}
}

// FixedSize returns the byte width of a fixed-width field type.
// It returns 0 for variable-length types and unknown tags.
func (t FieldType) FixedSize() int {
	switch t {
	case FieldInt8, FieldUint8, FieldBool:
		return 1
	case FieldInt16, FieldUint16:
		return 2
	case FieldInt32, FieldUint32, FieldFloat32:
		return 4
	case FieldInt64, FieldUint64, FieldFloat64:
		return 8
	default:
		return 0
	}
}

// IsVariable reports whether the field's payload lives in the variable-data section.
func (t FieldType) IsVariable() bool {
	return t == FieldString || t == FieldBlob
}

// IsValid reports whether t is a known field type tag.
func (t FieldType) IsValid() bool {
	return t >= FieldInt8 && t <= FieldBlob
}
