// Package errs defines the sentinel errors shared across bisere packages.
//
// Callers wrap these sentinels with contextual values via fmt.Errorf and %w,
// so errors.Is works against the sentinel while the message carries the
// specifics (expected/found values, byte counts, offsets).
package errs

import "errors"

var (
	// ErrInvalidMagic indicates the header magic number does not match the format identifier.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrUnsupportedVersion indicates the header declares a format version this library does not recognize.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrFieldNotFound indicates no offset-table entry carries the requested field id.
	ErrFieldNotFound = errors.New("field not found")

	// ErrFieldSizeMismatch indicates a type, width, or type-tag mismatch on a field read or write.
	ErrFieldSizeMismatch = errors.New("field size mismatch")

	// ErrBufferTooSmall indicates the buffer is shorter than the header or its declared total size.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidOffset indicates a computed field span falls outside the buffer.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrChecksumMismatch indicates the buffer contents do not match the checksum stored in the header.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidHeaderSize indicates a byte slice is too short to hold a format header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidEntrySize indicates a byte slice is too short to hold an offset entry.
	ErrInvalidEntrySize = errors.New("invalid offset entry size")

	// ErrInvalidOffsetTableSize indicates the declared offset-table size is not a
	// whole number of offset entries.
	ErrInvalidOffsetTableSize = errors.New("invalid offset table size")

	// ErrFieldAlreadyAdded indicates an encoder received the same field id twice.
	ErrFieldAlreadyAdded = errors.New("field already added")

	// ErrEncoderFinished indicates an encoder was used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)
