package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bisere/errs"
)

func TestNewFormatHeader(t *testing.T) {
	header := NewFormatHeader(24, 16, 512)

	require.NotNil(t, header)
	require.Equal(t, MagicNumber, header.Magic)
	require.Equal(t, FormatVersion, header.Version)
	require.Equal(t, uint32(HeaderSize), header.HeaderSize)
	require.Equal(t, uint32(24), header.OffsetTableSize)
	require.Equal(t, uint32(16), header.DataSize)
	require.Equal(t, uint32(512), header.VarSize)
	require.Equal(t, uint64(0), header.Checksum)
}

func TestFormatHeader_Validate(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		header := NewFormatHeader(12, 8, 0)
		require.NoError(t, header.Validate())
	})

	t.Run("Invalid magic", func(t *testing.T) {
		header := NewFormatHeader(12, 8, 0)
		header.Magic = 0xDEADBEEF

		err := header.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("Unsupported version", func(t *testing.T) {
		header := NewFormatHeader(12, 8, 0)
		header.Version = 99

		err := header.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})
}

func TestFormatHeader_DerivedOffsets(t *testing.T) {
	header := NewFormatHeader(36, 21, 272)

	require.Equal(t, HeaderSize+36+21+272, header.TotalSize())
	require.Equal(t, HeaderSize+36, header.DataSectionOffset())
	require.Equal(t, HeaderSize+36+21, header.VarSectionOffset())
}

func TestFormatHeader_Parse(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		original := NewFormatHeader(48, 32, 1024)
		original.Checksum = 0x0123456789abcdef

		data := original.Bytes()
		require.Len(t, data, HeaderSize)

		parsed := &FormatHeader{}
		err := parsed.Parse(data)

		require.NoError(t, err)
		require.Equal(t, *original, *parsed)
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &FormatHeader{}
		err := header.Parse([]byte{1, 2, 3})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Reserved tail is zero", func(t *testing.T) {
		data := NewFormatHeader(12, 8, 16).Bytes()
		for i := 32; i < HeaderSize; i++ {
			require.Zero(t, data[i], "reserved byte %d must be zero", i)
		}
	})
}

func TestParseFormatHeader(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := NewFormatHeader(24, 13, 300)
		data := original.Bytes()

		parsed, err := ParseFormatHeader(data)

		require.NoError(t, err)
		require.Equal(t, *original, parsed)
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := ParseFormatHeader(make([]byte, HeaderSize-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Extra data ignored", func(t *testing.T) {
		original := NewFormatHeader(12, 4, 64)
		data := append(original.Bytes(), 1, 2, 3, 4, 5)

		parsed, err := ParseFormatHeader(data)

		require.NoError(t, err)
		require.Equal(t, *original, parsed)
	})
}
