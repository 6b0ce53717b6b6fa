package section

import (
	"fmt"

	"github.com/arloliu/bisere/endian"
	"github.com/arloliu/bisere/errs"
	"github.com/arloliu/bisere/format"
)

// OffsetEntry describes a single field in a record buffer. It is a fixed size
// of 12 bytes and maps a field id to the field's type, byte offset, and size.
//
// Offset is relative to the start of the entry's own section: the fixed-data
// section for scalar types, the variable-data section for String and Blob.
//
// Size is the exact byte width for fixed types, or the maximum reserved byte
// span for String and Blob.
//
// Field ids need not be sequential or contiguous. Duplicate ids are not
// rejected; lookups return the first match in table order.
type OffsetEntry struct {
	// FieldID is the caller-assigned field identifier.
	FieldID uint32 // byte offset 0-3
	// Offset is the section-relative byte offset of the field's payload.
	Offset uint32 // byte offset 4-7
	// Type is the field's wire type tag.
	Type format.FieldType // byte offset 8-9
	// Size is the field's byte width, or reserved span for variable types.
	Size uint16 // byte offset 10-11
}

// Bytes returns the offset entry as a 12-byte slice using the specified
// endian engine.
//
// This method uses stack allocation for the scratch buffer, which is faster
// than heap allocation for this size.
func (e *OffsetEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [OffsetEntrySize]byte
	engine.PutUint32(b[0:4], e.FieldID)
	engine.PutUint32(b[4:8], e.Offset)
	engine.PutUint16(b[8:10], uint16(e.Type))
	engine.PutUint16(b[10:12], e.Size)

	return b[:]
}

// WriteToSlice writes the entry to a pre-allocated slice and returns the next
// write position.
//
// This is the most efficient method when writing multiple entries sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 12 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 12)
func (e *OffsetEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint32(data[offset:offset+4], e.FieldID)
	engine.PutUint32(data[offset+4:offset+8], e.Offset)
	engine.PutUint16(data[offset+8:offset+10], uint16(e.Type))
	engine.PutUint16(data[offset+10:offset+12], e.Size)

	return offset + OffsetEntrySize
}

// ParseOffsetEntry parses an OffsetEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be at least 12 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - OffsetEntry: Parsed entry
//   - error: ErrInvalidEntrySize if data is too short
func ParseOffsetEntry(data []byte, engine endian.EndianEngine) (OffsetEntry, error) {
	if len(data) < OffsetEntrySize {
		return OffsetEntry{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidEntrySize, OffsetEntrySize, len(data))
	}

	return OffsetEntry{
		FieldID: engine.Uint32(data[0:4]),
		Offset:  engine.Uint32(data[4:8]),
		Type:    format.FieldType(engine.Uint16(data[8:10])),
		Size:    engine.Uint16(data[10:12]),
	}, nil
}

// ParseOffsetTable decodes an entire offset-table section into an ordered
// slice of entries. Table order is preserved because first-match lookup
// semantics depend on it.
//
// Parameters:
//   - data: The exact offset-table bytes (length must be a multiple of 12)
//   - engine: Endian engine for byte order
//
// Returns:
//   - []OffsetEntry: Entries in table order, nil when data is empty
//   - error: ErrInvalidOffsetTableSize if data is not a whole number of entries
func ParseOffsetTable(data []byte, engine endian.EndianEngine) ([]OffsetEntry, error) {
	if len(data)%OffsetEntrySize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", errs.ErrInvalidOffsetTableSize, len(data), OffsetEntrySize)
	}

	count := len(data) / OffsetEntrySize
	if count == 0 {
		return nil, nil
	}

	entries := make([]OffsetEntry, count)
	for i := range entries {
		start := i * OffsetEntrySize
		entries[i] = OffsetEntry{
			FieldID: engine.Uint32(data[start : start+4]),
			Offset:  engine.Uint32(data[start+4 : start+8]),
			Type:    format.FieldType(engine.Uint16(data[start+8 : start+10])),
			Size:    engine.Uint16(data[start+10 : start+12]),
		}
	}

	return entries, nil
}
