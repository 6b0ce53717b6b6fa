package section

import (
	"fmt"

	"github.com/arloliu/bisere/endian"
	"github.com/arloliu/bisere/errs"
)

// FormatHeader is the fixed-size preamble at the start of every record buffer.
// It describes the byte size of each section that follows; every section
// boundary used elsewhere in the library is derived from these fields.
type FormatHeader struct {
	// Magic is the format identifier, always MagicNumber.
	Magic uint32 // byte offset 0-3
	// Version is the format version, currently FormatVersion.
	Version uint32 // byte offset 4-7
	// HeaderSize is the size of the header itself, always HeaderSize (80).
	HeaderSize uint32 // byte offset 8-11
	// OffsetTableSize is the byte size of the offset table section.
	OffsetTableSize uint32 // byte offset 12-15
	// DataSize is the byte size of the fixed-data section.
	DataSize uint32 // byte offset 16-19
	// VarSize is the byte size of the variable-data section.
	VarSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 of every buffer byte after the header.
	// Zero means the buffer carries no integrity check.
	Checksum uint64 // byte offset 24-31

	// Bytes 32-79 are reserved and must be zero.
}

// NewFormatHeader creates a header describing the given section sizes.
// The checksum starts at zero and may be patched in after the buffer is sealed.
func NewFormatHeader(offsetTableSize, dataSize, varSize uint32) *FormatHeader {
	return &FormatHeader{
		Magic:           MagicNumber,
		Version:         FormatVersion,
		HeaderSize:      HeaderSize,
		OffsetTableSize: offsetTableSize,
		DataSize:        dataSize,
		VarSize:         varSize,
		Checksum:        0,
	}
}

// Validate checks the magic constant and version field. No other header field
// is validated; size consistency is the caller's concern.
func (h *FormatHeader) Validate() error {
	if h.Magic != MagicNumber {
		return fmt.Errorf("%w: expected %#08x, found %#08x", errs.ErrInvalidMagic, MagicNumber, h.Magic)
	}
	if h.Version != FormatVersion {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	return nil
}

// TotalSize returns the declared size of the whole buffer:
// header + offset table + fixed-data section + variable-data section.
func (h *FormatHeader) TotalSize() int {
	return int(h.HeaderSize) + int(h.OffsetTableSize) + int(h.DataSize) + int(h.VarSize)
}

// DataSectionOffset returns the byte offset of the fixed-data section.
func (h *FormatHeader) DataSectionOffset() int {
	return int(h.HeaderSize) + int(h.OffsetTableSize)
}

// VarSectionOffset returns the byte offset of the variable-data section.
func (h *FormatHeader) VarSectionOffset() int {
	return h.DataSectionOffset() + int(h.DataSize)
}

// Parse decodes the header from a byte slice. It does not call Validate;
// decoding and validation are separate steps so callers can report precise
// errors.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 80 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 80 bytes
func (h *FormatHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	h.Magic = engine.Uint32(data[0:4])
	h.Version = engine.Uint32(data[4:8])
	h.HeaderSize = engine.Uint32(data[8:12])
	h.OffsetTableSize = engine.Uint32(data[12:16])
	h.DataSize = engine.Uint32(data[16:20])
	h.VarSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a freshly allocated 80-byte slice.
// The reserved tail is zero-filled.
func (h *FormatHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(b[0:4], h.Magic)
	engine.PutUint32(b[4:8], h.Version)
	engine.PutUint32(b[8:12], h.HeaderSize)
	engine.PutUint32(b[12:16], h.OffsetTableSize)
	engine.PutUint32(b[16:20], h.DataSize)
	engine.PutUint32(b[20:24], h.VarSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// ParseFormatHeader parses a FormatHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 80 bytes)
//
// Returns:
//   - FormatHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is too short
func ParseFormatHeader(data []byte) (FormatHeader, error) {
	if len(data) < HeaderSize {
		return FormatHeader{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	h := FormatHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FormatHeader{}, err
	}

	return h, nil
}
