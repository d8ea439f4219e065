//go:build !windows

package source

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// File maps page files of a directory, e.g. pages bridged from a
// Windows host or written by tests.
type File struct {
	dir string
}

func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) Path(name string) string {
	return filepath.Join(f.dir, BaseName(name))
}

func (f *File) Open(name string, size int) (Segment, error) {
	fd, err := os.Open(f.Path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer fd.Close()
	fi, err := fd.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if fi.Size() < int64(size) {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
			ErrSourceUnavailable, fd.Name(), fi.Size(), size)
	}
	data, err := unix.Mmap(int(fd.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %w", ErrSourceUnavailable, fd.Name(), err)
	}
	return &mappedFile{data: data}, nil
}

type mappedFile struct {
	data []byte
}

func (m *mappedFile) Bytes() []byte {
	return m.data
}

func (m *mappedFile) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}

func newShared() (Source, error) {
	return nil, fmt.Errorf("%w: named shared memory requires windows", ErrSourceUnavailable)
}
