//go:build unix

package record

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/arloliu/bisere/errs"
	"github.com/arloliu/bisere/section"
)

// MappedView is a read-only View over a memory-mapped record file. The
// mapping stays valid until Close.
type MappedView struct {
	*View
	data []byte
}

// OpenMapped memory-maps the record file at path and constructs a read-only
// view over the mapping. The file's bytes are validated exactly like an
// in-memory buffer.
//
// The caller must Close the returned view to release the mapping.
func OpenMapped(path string) (*MappedView, error) {
	data, err := mapFile(path, unix.O_RDONLY, unix.PROT_READ)
	if err != nil {
		return nil, err
	}

	v, err := NewView(data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}

	return &MappedView{View: v, data: data}, nil
}

// Close unmaps the file. The view and anything obtained from it (strings,
// blob slices) must not be used afterward.
func (m *MappedView) Close() error {
	if m.data == nil {
		return nil
	}

	data := m.data
	m.data = nil
	m.View = nil

	return unix.Munmap(data)
}

// MappedMutableView is a MutableView over a read-write memory-mapped record
// file. Mutations land in the page cache; Flush forces them to disk.
type MappedMutableView struct {
	*MutableView
	data []byte
}

// OpenMappedMutable memory-maps the record file at path read-write and
// constructs a mutable view over the mapping, giving bounded in-place field
// rewrites directly against the on-disk record.
//
// The single-writer requirement extends to the file: no other process or
// mapping may observe it while this view exists.
func OpenMappedMutable(path string) (*MappedMutableView, error) {
	data, err := mapFile(path, unix.O_RDWR, unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		return nil, err
	}

	mv, err := NewMutableView(data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}

	return &MappedMutableView{MutableView: mv, data: data}, nil
}

// Flush synchronously writes any modified pages back to the file.
func (m *MappedMutableView) Flush() error {
	if m.data == nil {
		return nil
	}

	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close flushes outstanding changes and unmaps the file. The view must not
// be used afterward.
func (m *MappedMutableView) Close() error {
	if m.data == nil {
		return nil
	}

	data := m.data
	m.data = nil
	m.MutableView = nil

	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		_ = unix.Munmap(data)
		return err
	}

	return unix.Munmap(data)
}

func mapFile(path string, openFlags int, prot int) ([]byte, error) {
	fd, err := unix.Open(path, openFlags|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = unix.Close(fd) }()

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	size := int(st.Size)
	if size < section.HeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, section.HeaderSize, size)
	}

	flags := unix.MAP_SHARED
	data, err := unix.Mmap(fd, 0, size, prot, flags)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return data, nil
}
