// Package bisere implements a fixed-schema binary record format with
// zero-copy reads and bounded in-place field mutation.
//
// The format targets workloads where repeated full serialize/deserialize
// cycles are too expensive: hot paths, shared buffers, and repeated partial
// updates. A sealed buffer is self-describing; any holder of the bytes can
// reconstruct every section boundary and field location with no external
// schema.
//
// # Buffer Layout
//
// Every buffer starts with a fixed 80-byte header describing the sizes of
// the sections that follow: an offset table of 12-byte field descriptors, a
// fixed-data section holding scalar payloads, and a variable-data section
// holding NUL-delimited strings and fixed-span blobs. All values are
// little-endian on the wire.
//
// # Basic Usage
//
// Building a record:
//
//	enc, _ := bisere.NewEncoder()
//	_ = bisere.AddField(enc, 1, uint64(12345))
//	_ = bisere.AddField(enc, 2, uint32(30))
//	_ = enc.AddString(10, "Hello", 256)
//	buf, _ := enc.Finish()
//
// Reading it back with a zero-copy view:
//
//	v, _ := bisere.NewView(buf)
//	age, _ := bisere.GetField[uint32](v, 2)
//	name, _ := v.GetString(10)
//
// Rewriting fields in place:
//
//	mv, _ := bisere.NewMutableView(buf)
//	_ = bisere.ModifyField(mv, 2, uint32(31))
//	_ = mv.ModifyString(10, "World")
//	mv.UpdateChecksum()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the record
// package, simplifying the most common use cases. For fine-grained control
// (the raw section Builder, memory-mapped views), use the record package
// directly.
package bisere

import (
	"github.com/arloliu/bisere/format"
	"github.com/arloliu/bisere/internal/hash"
	"github.com/arloliu/bisere/record"
	"github.com/arloliu/bisere/section"
)

type (
	// Builder assembles a record buffer section by section. See record.Builder.
	Builder = record.Builder
	// Encoder builds a sealed record buffer from typed fields. See record.Encoder.
	Encoder = record.Encoder
	// EncoderOption configures an Encoder. See record.EncoderOption.
	EncoderOption = record.EncoderOption
	// View is a read-only, zero-copy view over a sealed buffer. See record.View.
	View = record.View
	// MutableView rewrites field contents in place. See record.MutableView.
	MutableView = record.MutableView
	// FormatHeader is the fixed 80-byte buffer preamble. See section.FormatHeader.
	FormatHeader = section.FormatHeader
	// OffsetEntry is a 12-byte field descriptor. See section.OffsetEntry.
	OffsetEntry = section.OffsetEntry
	// FieldType identifies the wire type of a field. See format.FieldType.
	FieldType = format.FieldType
)

// NewBuilder creates an empty section Builder.
func NewBuilder() *Builder {
	return record.NewBuilder()
}

// NewEncoder creates an Encoder with the given options applied.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	return record.NewEncoder(opts...)
}

// NewView validates buffer and constructs a read-only view over it.
func NewView(buffer []byte) (*View, error) {
	return record.NewView(buffer)
}

// NewMutableView validates buffer and constructs a mutable view over it.
// The caller must guarantee exclusive access to the buffer for the view's
// lifetime.
func NewMutableView(buffer []byte) (*MutableView, error) {
	return record.NewMutableView(buffer)
}

// AddField adds a fixed-width scalar field to an Encoder.
func AddField[T record.FixedValue](e *Encoder, fieldID uint32, value T) error {
	return record.AddField(e, fieldID, value)
}

// GetField reads a fixed-data field from a View as T.
func GetField[T record.FixedValue](v *View, fieldID uint32) (T, error) {
	return record.GetField[T](v, fieldID)
}

// ModifyField overwrites a fixed-data field through a MutableView. The byte
// width of T must exactly equal the field's declared size.
func ModifyField[T record.FixedValue](mv *MutableView, fieldID uint32, value T) error {
	return record.ModifyField(mv, fieldID, value)
}

// Checksum computes the integrity checksum of a sealed buffer: the xxHash64
// of every byte after the fixed header. It returns 0 when the buffer is
// shorter than a header.
func Checksum(buffer []byte) uint64 {
	if len(buffer) < section.HeaderSize {
		return 0
	}

	return hash.Checksum(buffer[section.HeaderSize:])
}
