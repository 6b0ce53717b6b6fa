package record

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/bisere/endian"
	"github.com/arloliu/bisere/errs"
	"github.com/arloliu/bisere/format"
	"github.com/arloliu/bisere/internal/hash"
	"github.com/arloliu/bisere/section"
)

// MutableView rewrites field contents of a sealed record buffer in place. It
// never changes the buffer's length or its section boundaries.
//
// Every mutator validates the target span before touching memory, so a failed
// call leaves the buffer byte-for-byte unchanged. The three regions a
// MutableView touches (header checksum slot, fixed-data spans, variable-data
// spans) are derived from the same validated header fields, which keeps them
// disjoint.
//
// A MutableView requires exclusive access to its buffer for its entire
// lifetime: no View or other MutableView may observe the buffer while this
// one exists, because a string or blob rewrite passes through a transient
// zero-filled state. The library takes no lock; the single-writer guarantee
// is the caller's responsibility.
type MutableView struct {
	buffer  []byte
	header  section.FormatHeader
	entries []section.OffsetEntry
	engine  endian.EndianEngine
}

// NewMutableView validates buffer exactly like NewView, then constructs a
// mutable view over it.
//
// Returns:
//   - *MutableView: Mutable view borrowing buffer exclusively
//   - error: ErrBufferTooSmall, ErrInvalidMagic, ErrUnsupportedVersion,
//     ErrInvalidOffsetTableSize, or ErrChecksumMismatch
func NewMutableView(buffer []byte) (*MutableView, error) {
	header, entries, err := validateBuffer(buffer)
	if err != nil {
		return nil, err
	}

	return &MutableView{
		buffer:  buffer,
		header:  header,
		entries: entries,
		engine:  endian.GetLittleEndianEngine(),
	}, nil
}

// Header returns a copy of the decoded format header. The checksum field
// reflects the slot's current contents, including invalidation by mutators.
func (mv *MutableView) Header() section.FormatHeader {
	return mv.header
}

// Len returns the length of the underlying buffer.
func (mv *MutableView) Len() int {
	return len(mv.buffer)
}

// FindEntry returns the first offset-table entry with the given field id, in
// table order, along with whether one was found.
func (mv *MutableView) FindEntry(fieldID uint32) (section.OffsetEntry, bool) {
	return findEntry(mv.entries, fieldID)
}

// ModifyField overwrites the fixed-data field identified by fieldID with
// value's little-endian representation.
//
// The byte width of T must exactly equal the entry's declared size; a
// narrower value is rejected rather than zero-extended. The target span is
// bounds-checked before any byte is written.
//
// A successful rewrite invalidates the buffer's stored checksum; call
// UpdateChecksum to restore integrity protection.
//
// Returns:
//   - error: ErrFieldNotFound, ErrFieldSizeMismatch, or ErrInvalidOffset
func ModifyField[T FixedValue](mv *MutableView, fieldID uint32, value T) error {
	entry, ok := mv.FindEntry(fieldID)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrFieldNotFound, fieldID)
	}

	size := int(unsafe.Sizeof(value))
	if size != int(entry.Size) {
		return fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrFieldSizeMismatch, entry.Size, size)
	}

	start := mv.header.DataSectionOffset() + int(entry.Offset)
	end := start + size
	if start < 0 || end > len(mv.buffer) {
		return fmt.Errorf("%w: %d exceeds buffer size %d", errs.ErrInvalidOffset, end, len(mv.buffer))
	}

	encodeFixed(mv.buffer[start:end], value, mv.engine)
	mv.invalidateChecksum()

	return nil
}

// ModifyString overwrites a String field in place. The new contents plus one
// byte for the NUL terminator must fit in the entry's reserved span.
//
// The entire reserved span is zero-filled first, then the new bytes are
// copied to its start; any leftover zero byte after the written content
// serves as the terminator read back by GetString.
//
// Returns:
//   - error: ErrFieldNotFound, ErrFieldSizeMismatch (wrong tag or value too
//     long), or ErrInvalidOffset
func (mv *MutableView) ModifyString(fieldID uint32, value string) error {
	entry, ok := mv.FindEntry(fieldID)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrFieldNotFound, fieldID)
	}
	if entry.Type != format.FieldString {
		return fmt.Errorf("%w: field %d has type %s, want %s",
			errs.ErrFieldSizeMismatch, fieldID, entry.Type, format.FieldString)
	}
	if len(value)+1 > int(entry.Size) {
		return fmt.Errorf("%w: expected at most %d bytes, got %d",
			errs.ErrFieldSizeMismatch, entry.Size, len(value)+1)
	}

	span, err := mv.varSpan(entry)
	if err != nil {
		return err
	}

	clear(span)
	copy(span, value)
	mv.invalidateChecksum()

	return nil
}

// ModifyBlob overwrites a Blob field in place. The new contents must fit in
// the entry's reserved span.
//
// The entire reserved span is zero-filled first, then the new bytes are
// copied to its start. Trailing bytes remain zero and are included in what
// GetBlob later returns; the blob's logical length is always the entry's
// size, not the length of value.
//
// Returns:
//   - error: ErrFieldNotFound, ErrFieldSizeMismatch (wrong tag or value too
//     long), or ErrInvalidOffset
func (mv *MutableView) ModifyBlob(fieldID uint32, value []byte) error {
	entry, ok := mv.FindEntry(fieldID)
	if !ok {
		return fmt.Errorf("%w: %d", errs.ErrFieldNotFound, fieldID)
	}
	if entry.Type != format.FieldBlob {
		return fmt.Errorf("%w: field %d has type %s, want %s",
			errs.ErrFieldSizeMismatch, fieldID, entry.Type, format.FieldBlob)
	}
	if len(value) > int(entry.Size) {
		return fmt.Errorf("%w: expected at most %d bytes, got %d",
			errs.ErrFieldSizeMismatch, entry.Size, len(value))
	}

	span, err := mv.varSpan(entry)
	if err != nil {
		return err
	}

	clear(span)
	copy(span, value)
	mv.invalidateChecksum()

	return nil
}

// UpdateChecksum recomputes the buffer checksum over everything after the
// header and stores it in the header's checksum slot.
//
// Returns:
//   - uint64: The stored checksum
func (mv *MutableView) UpdateChecksum() uint64 {
	sum := hash.Checksum(mv.buffer[section.HeaderSize:mv.header.TotalSize()])
	mv.header.Checksum = sum
	mv.engine.PutUint64(mv.buffer[section.ChecksumOffset:section.ChecksumOffset+8], sum)

	return sum
}

// varSpan returns the entry's reserved span in the variable-data section,
// bounds-checked against the buffer.
func (mv *MutableView) varSpan(entry section.OffsetEntry) ([]byte, error) {
	start := mv.header.VarSectionOffset() + int(entry.Offset)
	end := start + int(entry.Size)
	if start < 0 || end > len(mv.buffer) {
		return nil, fmt.Errorf("%w: %d exceeds buffer size %d", errs.ErrInvalidOffset, end, len(mv.buffer))
	}

	return mv.buffer[start:end], nil
}

// invalidateChecksum zeroes the stored checksum after a mutation, marking the
// buffer's integrity as unknown until UpdateChecksum runs.
func (mv *MutableView) invalidateChecksum() {
	if mv.header.Checksum == 0 {
		return
	}

	mv.header.Checksum = 0
	mv.engine.PutUint64(mv.buffer[section.ChecksumOffset:section.ChecksumOffset+8], 0)
}
