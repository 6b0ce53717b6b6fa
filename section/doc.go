// Package section defines the on-wire building blocks of a record buffer:
// the fixed 80-byte FormatHeader and the 12-byte OffsetEntry descriptors that
// make up the offset table.
//
// A sealed buffer is laid out as four back-to-back sections:
//
//	+---------------+----------------+-------------------+---------------------+
//	| FormatHeader  | Offset Table   | Fixed-data section | Variable-data      |
//	| 80 bytes      | n * 12 bytes   | scalar payloads    | string/blob spans  |
//	+---------------+----------------+-------------------+---------------------+
//
// The header's derived-offset methods (TotalSize, DataSectionOffset,
// VarSectionOffset) are the single source of truth for the section
// boundaries; no other package recomputes them.
//
// All multi-byte values are little-endian on the wire.
package section
