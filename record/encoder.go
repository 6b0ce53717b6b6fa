package record

import (
	"fmt"

	"github.com/arloliu/bisere/endian"
	"github.com/arloliu/bisere/errs"
	"github.com/arloliu/bisere/format"
	"github.com/arloliu/bisere/internal/hash"
	"github.com/arloliu/bisere/internal/options"
	"github.com/arloliu/bisere/section"
)

// EncoderOption represents a functional option for configuring an Encoder.
// This is a type alias for the generic Option interface specialized for Encoder.
type EncoderOption = options.Option[*Encoder]

// WithChecksum controls whether Finish computes and stores the buffer
// checksum. It is enabled by default; disabling it leaves the checksum slot
// zero, which views treat as "no integrity check".
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.checksum = enabled
	})
}

// WithFieldCapacity pre-allocates space for n field definitions, avoiding
// reallocations when the field count is known up front.
func WithFieldCapacity(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n < 0 {
			return fmt.Errorf("field capacity cannot be negative: %d", n)
		}
		e.fields = make([]fieldDef, 0, n)

		return nil
	})
}

// fieldDef captures one field between Add and Finish: its offset-table entry
// values plus the payload bytes to place at its section-relative offset.
type fieldDef struct {
	id      uint32
	typ     format.FieldType
	offset  uint32
	size    uint16
	payload []byte
}

// Encoder builds a sealed record buffer from typed fields without the caller
// computing section sizes or offsets by hand. Fields are packed back to back
// in add order, scalars in the fixed-data section and strings/blobs in the
// variable-data section.
//
// Unlike the raw Builder, the Encoder rejects duplicate field ids and values
// that do not fit their reserved span, so the buffers it produces are always
// internally consistent.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After calling
// Finish, a new Encoder must be created for further encoding.
type Encoder struct {
	fields   []fieldDef
	seen     map[uint32]struct{}
	dataSize uint32
	varSize  uint32
	checksum bool
	finished bool
	engine   endian.EndianEngine
}

// NewEncoder creates an Encoder with the given options applied.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		seen:     make(map[uint32]struct{}),
		checksum: true,
		engine:   endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// AddField adds a fixed-width scalar field. The type tag and byte width are
// derived from T.
//
// Returns:
//   - error: ErrEncoderFinished or ErrFieldAlreadyAdded
func AddField[T FixedValue](e *Encoder, fieldID uint32, value T) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	typ := fieldTypeOf(any(value))
	size := typ.FixedSize()

	if err := e.claimID(fieldID); err != nil {
		return err
	}

	payload := make([]byte, size)
	encodeFixed(payload, value, e.engine)

	e.fields = append(e.fields, fieldDef{
		id:      fieldID,
		typ:     typ,
		offset:  e.dataSize,
		size:    uint16(size), //nolint:gosec // FixedSize is at most 8
		payload: payload,
	})
	e.dataSize += uint32(size) //nolint:gosec

	return nil
}

// AddString adds a String field with a reserved span of maxSize bytes in the
// variable-data section. The value plus its NUL terminator must fit in the
// span; the remainder is zero-filled so later in-place rewrites up to
// maxSize-1 bytes stay possible.
//
// Returns:
//   - error: ErrEncoderFinished, ErrFieldSizeMismatch, or ErrFieldAlreadyAdded
func (e *Encoder) AddString(fieldID uint32, value string, maxSize uint16) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if len(value)+1 > int(maxSize) {
		return fmt.Errorf("%w: expected at most %d bytes, got %d",
			errs.ErrFieldSizeMismatch, maxSize, len(value)+1)
	}
	if err := e.claimID(fieldID); err != nil {
		return err
	}

	e.fields = append(e.fields, fieldDef{
		id:      fieldID,
		typ:     format.FieldString,
		offset:  e.varSize,
		size:    maxSize,
		payload: []byte(value),
	})
	e.varSize += uint32(maxSize)

	return nil
}

// AddBlob adds a Blob field with a reserved span of maxSize bytes in the
// variable-data section. The value must fit in the span; the remainder is
// zero-filled and counts toward the blob's contents on read.
//
// Returns:
//   - error: ErrEncoderFinished, ErrFieldSizeMismatch, or ErrFieldAlreadyAdded
func (e *Encoder) AddBlob(fieldID uint32, value []byte, maxSize uint16) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if len(value) > int(maxSize) {
		return fmt.Errorf("%w: expected at most %d bytes, got %d",
			errs.ErrFieldSizeMismatch, maxSize, len(value))
	}
	if err := e.claimID(fieldID); err != nil {
		return err
	}

	payload := make([]byte, len(value))
	copy(payload, value)

	e.fields = append(e.fields, fieldDef{
		id:      fieldID,
		typ:     format.FieldBlob,
		offset:  e.varSize,
		size:    maxSize,
		payload: payload,
	})
	e.varSize += uint32(maxSize)

	return nil
}

// FieldCount returns the number of fields added so far.
func (e *Encoder) FieldCount() int {
	return len(e.fields)
}

// Finish assembles the sealed buffer: header, offset table in add order,
// fixed-data section, and variable-data section. When checksums are enabled
// it patches the computed checksum into the header slot afterward.
//
// The Encoder is consumed; further calls return ErrEncoderFinished.
//
// Returns:
//   - []byte: The sealed record buffer
//   - error: ErrEncoderFinished
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	tableSize := uint32(len(e.fields) * section.OffsetEntrySize) //nolint:gosec
	header := section.NewFormatHeader(tableSize, e.dataSize, e.varSize)

	entries := make([]section.OffsetEntry, len(e.fields))
	data := make([]byte, e.dataSize)
	varData := make([]byte, e.varSize)

	for i := range e.fields {
		f := &e.fields[i]
		entries[i] = section.OffsetEntry{
			FieldID: f.id,
			Offset:  f.offset,
			Type:    f.typ,
			Size:    f.size,
		}
		if f.typ.IsVariable() {
			copy(varData[f.offset:], f.payload)
		} else {
			copy(data[f.offset:], f.payload)
		}
	}

	builder := NewBuilder()
	builder.WriteHeader(header)
	builder.WriteOffsetTable(entries)
	builder.WriteData(data)
	builder.WriteVarData(varData)

	buf := builder.IntoBuffer()
	if e.checksum {
		sum := hash.Checksum(buf[section.HeaderSize:])
		e.engine.PutUint64(buf[section.ChecksumOffset:section.ChecksumOffset+8], sum)
	}

	return buf, nil
}

// claimID reserves a field id, rejecting duplicates. The low-level format
// tolerates duplicate ids with first-match lookup; the Encoder refuses to
// produce them in the first place.
func (e *Encoder) claimID(fieldID uint32) error {
	if _, dup := e.seen[fieldID]; dup {
		return fmt.Errorf("%w: %d", errs.ErrFieldAlreadyAdded, fieldID)
	}
	e.seen[fieldID] = struct{}{}

	return nil
}

// fieldTypeOf maps a FixedValue's dynamic type to its wire type tag.
func fieldTypeOf(v any) format.FieldType {
	switch v.(type) {
	case int8:
		return format.FieldInt8
	case int16:
		return format.FieldInt16
	case int32:
		return format.FieldInt32
	case int64:
		return format.FieldInt64
	case uint8:
		return format.FieldUint8
	case uint16:
		return format.FieldUint16
	case uint32:
		return format.FieldUint32
	case uint64:
		return format.FieldUint64
	case float32:
		return format.FieldFloat32
	case float64:
		return format.FieldFloat64
	case bool:
		return format.FieldBool
	default:
		return 0
	}
}
