package record

import (
	"github.com/arloliu/bisere/endian"
	"github.com/arloliu/bisere/internal/pool"
	"github.com/arloliu/bisere/section"
)

// Builder assembles a record buffer section by section: header, offset
// table, fixed-data section, and variable-data section, in that order.
//
// The Builder is purely additive. It performs no cross-checking between the
// sizes declared in the header and the bytes actually written; the caller is
// responsible for keeping them consistent. Use Encoder for a checked,
// schema-level build.
//
// Note: The Builder is NOT thread-safe and NOT reusable. After calling
// IntoBuffer, a new Builder must be created for further building.
type Builder struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	consumed bool
}

// NewBuilder creates an empty Builder backed by a pooled byte buffer.
func NewBuilder() *Builder {
	return &Builder{
		buf:    pool.GetRecordBuffer(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// WriteHeader appends the serialized header to the buffer.
func (b *Builder) WriteHeader(h *section.FormatHeader) {
	b.mustUsable()
	b.buf.MustWrite(h.Bytes())
}

// WriteOffsetTable appends the serialized offset table to the buffer,
// preserving entry order.
func (b *Builder) WriteOffsetTable(entries []section.OffsetEntry) {
	b.mustUsable()
	b.buf.Grow(len(entries) * section.OffsetEntrySize)
	for i := range entries {
		b.buf.MustWrite(entries[i].Bytes(b.engine))
	}
}

// WriteData appends raw fixed-data section bytes to the buffer.
func (b *Builder) WriteData(data []byte) {
	b.mustUsable()
	b.buf.MustWrite(data)
}

// WriteVarData appends raw variable-data section bytes to the buffer.
func (b *Builder) WriteVarData(data []byte) {
	b.mustUsable()
	b.buf.MustWrite(data)
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	b.mustUsable()
	return b.buf.Len()
}

// Bytes returns the bytes written so far. The returned slice is only valid
// until the next write or IntoBuffer call.
func (b *Builder) Bytes() []byte {
	b.mustUsable()
	return b.buf.Bytes()
}

// IntoBuffer returns the finished byte sequence and consumes the Builder.
// The pooled working buffer is released; any further use of the Builder
// panics.
func (b *Builder) IntoBuffer() []byte {
	b.mustUsable()

	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())

	pool.PutRecordBuffer(b.buf)
	b.buf = nil
	b.consumed = true

	return out
}

func (b *Builder) mustUsable() {
	if b.consumed {
		panic("record: Builder used after IntoBuffer")
	}
}
