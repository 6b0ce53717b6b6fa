package record

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/bisere/endian"
	"github.com/arloliu/bisere/errs"
	"github.com/arloliu/bisere/format"
	"github.com/arloliu/bisere/internal/hash"
	"github.com/arloliu/bisere/section"
)

// FixedValue constrains the scalar Go types that can live in the fixed-data
// section of a record buffer.
type FixedValue interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool
}

// View is a read-only, zero-copy interpretation of a sealed record buffer.
//
// A View borrows the buffer for its lifetime and never copies payload bytes:
// GetBlob returns a sub-slice, GetString aliases the buffer's storage, and
// GetField decodes scalars through explicit little-endian conversion so no
// access depends on pointer alignment.
//
// Any number of Views over the same buffer may be used concurrently, as long
// as no MutableView exists for that buffer.
type View struct {
	buffer  []byte
	header  section.FormatHeader
	entries []section.OffsetEntry
	engine  endian.EndianEngine
}

// NewView validates buffer and constructs a read-only view over it.
//
// Validation order: minimum header length, magic and version, declared total
// size, offset-table shape, then the checksum when the header carries a
// non-zero one.
//
// Returns:
//   - *View: Read-only view borrowing buffer
//   - error: ErrBufferTooSmall, ErrInvalidMagic, ErrUnsupportedVersion,
//     ErrInvalidOffsetTableSize, or ErrChecksumMismatch
func NewView(buffer []byte) (*View, error) {
	header, entries, err := validateBuffer(buffer)
	if err != nil {
		return nil, err
	}

	return &View{
		buffer:  buffer,
		header:  header,
		entries: entries,
		engine:  endian.GetLittleEndianEngine(),
	}, nil
}

// validateBuffer performs the shared view-construction checks and decodes the
// header and offset table. Both view types construct through it so their
// validation semantics cannot drift apart.
func validateBuffer(buffer []byte) (section.FormatHeader, []section.OffsetEntry, error) {
	if len(buffer) < section.HeaderSize {
		return section.FormatHeader{}, nil,
			fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, section.HeaderSize, len(buffer))
	}

	header, err := section.ParseFormatHeader(buffer)
	if err != nil {
		return section.FormatHeader{}, nil, err
	}
	if err := header.Validate(); err != nil {
		return section.FormatHeader{}, nil, err
	}

	total := header.TotalSize()
	if len(buffer) < total {
		return section.FormatHeader{}, nil,
			fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, total, len(buffer))
	}

	tableStart := int(header.HeaderSize)
	tableEnd := tableStart + int(header.OffsetTableSize)
	entries, err := section.ParseOffsetTable(buffer[tableStart:tableEnd], endian.GetLittleEndianEngine())
	if err != nil {
		return section.FormatHeader{}, nil, err
	}

	if header.Checksum != 0 {
		computed := hash.Checksum(buffer[section.HeaderSize:total])
		if computed != header.Checksum {
			return section.FormatHeader{}, nil,
				fmt.Errorf("%w: header declares %#016x, computed %#016x", errs.ErrChecksumMismatch, header.Checksum, computed)
		}
	}

	return header, entries, nil
}

// Header returns a copy of the decoded format header.
func (v *View) Header() section.FormatHeader {
	return v.header
}

// Entries returns the decoded offset table in table order. The slice is
// shared with the view and must not be modified.
func (v *View) Entries() []section.OffsetEntry {
	return v.entries
}

// Len returns the length of the underlying buffer.
func (v *View) Len() int {
	return len(v.buffer)
}

// FindEntry returns the first offset-table entry with the given field id, in
// table order, along with whether one was found.
func (v *View) FindEntry(fieldID uint32) (section.OffsetEntry, bool) {
	return findEntry(v.entries, fieldID)
}

func findEntry(entries []section.OffsetEntry, fieldID uint32) (section.OffsetEntry, bool) {
	for i := range entries {
		if entries[i].FieldID == fieldID {
			return entries[i], true
		}
	}

	return section.OffsetEntry{}, false
}

// GetField reads the fixed-data field identified by fieldID as T.
//
// The field's absolute position is data_section_offset + entry.offset; the
// read spans exactly the byte width of T and is bounds-checked against the
// buffer. The entry's type tag is not checked on reads, matching the lenient
// read / strict write contract of the format.
//
// Returns:
//   - T: Decoded value
//   - error: ErrFieldNotFound or ErrInvalidOffset
func GetField[T FixedValue](v *View, fieldID uint32) (T, error) {
	var zero T

	entry, ok := v.FindEntry(fieldID)
	if !ok {
		return zero, fmt.Errorf("%w: %d", errs.ErrFieldNotFound, fieldID)
	}

	size := int(unsafe.Sizeof(zero))
	start := v.header.DataSectionOffset() + int(entry.Offset)
	end := start + size
	if start < 0 || end > len(v.buffer) {
		return zero, fmt.Errorf("%w: %d exceeds buffer size %d", errs.ErrInvalidOffset, end, len(v.buffer))
	}

	return decodeFixed[T](v.buffer[start:end], v.engine), nil
}

// GetString returns the contents of a String field: the bytes from the
// field's variable-section offset up to the first NUL byte or the end of the
// buffer, decoded as UTF-8.
//
// The returned string aliases the view's buffer storage (zero-copy); it stays
// valid only as long as the buffer does and must not be retained across a
// MutableView rewrite.
//
// Returns:
//   - string: Field contents, empty when the span is empty
//   - error: ErrFieldNotFound, ErrFieldSizeMismatch (wrong tag or invalid
//     UTF-8), or ErrInvalidOffset
func (v *View) GetString(fieldID uint32) (string, error) {
	entry, ok := v.FindEntry(fieldID)
	if !ok {
		return "", fmt.Errorf("%w: %d", errs.ErrFieldNotFound, fieldID)
	}
	if entry.Type != format.FieldString {
		return "", fmt.Errorf("%w: field %d has type %s, want %s",
			errs.ErrFieldSizeMismatch, fieldID, entry.Type, format.FieldString)
	}

	start := v.header.VarSectionOffset() + int(entry.Offset)
	if start < 0 || start > len(v.buffer) {
		return "", fmt.Errorf("%w: %d exceeds buffer size %d", errs.ErrInvalidOffset, start, len(v.buffer))
	}

	end := start
	for end < len(v.buffer) && v.buffer[end] != 0 {
		end++
	}

	span := v.buffer[start:end]
	if !utf8.Valid(span) {
		return "", fmt.Errorf("%w: field %d contains invalid UTF-8", errs.ErrFieldSizeMismatch, fieldID)
	}
	if len(span) == 0 {
		return "", nil
	}

	return unsafe.String(&span[0], len(span)), nil
}

// GetBlob returns the full reserved span of a Blob field: exactly entry.size
// bytes starting at the field's variable-section offset. Trailing zero bytes
// from a shorter rewrite are included.
//
// The returned slice aliases the view's buffer (zero-copy) and must not be
// modified.
//
// Returns:
//   - []byte: The field's reserved span
//   - error: ErrFieldNotFound, ErrFieldSizeMismatch (wrong tag), or ErrInvalidOffset
func (v *View) GetBlob(fieldID uint32) ([]byte, error) {
	entry, ok := v.FindEntry(fieldID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrFieldNotFound, fieldID)
	}
	if entry.Type != format.FieldBlob {
		return nil, fmt.Errorf("%w: field %d has type %s, want %s",
			errs.ErrFieldSizeMismatch, fieldID, entry.Type, format.FieldBlob)
	}

	start := v.header.VarSectionOffset() + int(entry.Offset)
	end := start + int(entry.Size)
	if start < 0 || end > len(v.buffer) {
		return nil, fmt.Errorf("%w: %d exceeds buffer size %d", errs.ErrInvalidOffset, end, len(v.buffer))
	}

	return v.buffer[start:end:end], nil
}

// decodeFixed reinterprets a little-endian byte span as T without relying on
// the span's alignment. The value is decoded into a native integer of the
// same width first, then bit-punned into T.
func decodeFixed[T FixedValue](src []byte, engine endian.EndianEngine) T {
	var out T

	switch len(src) {
	case 1:
		b := src[0]
		if _, isBool := any(out).(bool); isBool && b > 1 {
			// Normalize so the in-memory bool representation stays 0 or 1.
			b = 1
		}
		*(*byte)(unsafe.Pointer(&out)) = b
	case 2:
		*(*uint16)(unsafe.Pointer(&out)) = engine.Uint16(src)
	case 4:
		*(*uint32)(unsafe.Pointer(&out)) = engine.Uint32(src)
	case 8:
		*(*uint64)(unsafe.Pointer(&out)) = engine.Uint64(src)
	}

	return out
}

// encodeFixed writes value's little-endian representation into dst, which
// must be exactly the byte width of T.
func encodeFixed[T FixedValue](dst []byte, value T, engine endian.EndianEngine) {
	switch len(dst) {
	case 1:
		dst[0] = *(*byte)(unsafe.Pointer(&value))
	case 2:
		engine.PutUint16(dst, *(*uint16)(unsafe.Pointer(&value)))
	case 4:
		engine.PutUint32(dst, *(*uint32)(unsafe.Pointer(&value)))
	case 8:
		engine.PutUint64(dst, *(*uint64)(unsafe.Pointer(&value)))
	}
}
