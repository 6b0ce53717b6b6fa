package section

const (
	// MagicNumber is the format identifier stored in the first four header
	// bytes. It spells "BISE" in ASCII.
	MagicNumber uint32 = 0x42495345

	// FormatVersion is the current format version.
	FormatVersion uint32 = 1
)

// Offsets and sizes of the fixed structures in a record buffer.
const (
	HeaderSize        = 80         // fixed header size in bytes
	OffsetEntrySize   = 12         // fixed offset entry size in bytes
	OffsetTableOffset = HeaderSize // byte offset where the offset table starts

	// ChecksumOffset is the byte offset of the checksum slot within the header.
	ChecksumOffset = 24

	// headerReservedSize is the zero-filled tail of the header, kept for
	// future format revisions.
	headerReservedSize = 48
)
