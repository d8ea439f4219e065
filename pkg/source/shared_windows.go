//go:build windows

package source

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Shared opens the named file mappings created by the game.
type Shared struct{}

func newShared() (Source, error) {
	return Shared{}, nil
}

func (Shared) Open(name string, size int) (Segment, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil,
		windows.PAGE_READWRITE, 0, uint32(size), namePtr)
	if err != nil {
		return nil, fmt.Errorf("%w: mapping %s: %w", ErrSourceUnavailable, name, err)
	}
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		_ = windows.CloseHandle(h)
		return nil, fmt.Errorf("%w: view %s: %w", ErrSourceUnavailable, name, err)
	}
	return &view{
		handle: h,
		addr:   addr,
		data:   unsafe.Slice((*byte)(unsafe.Pointer(addr)), size),
	}, nil
}

type view struct {
	handle windows.Handle
	addr   uintptr
	data   []byte
}

func (v *view) Bytes() []byte {
	return v.data
}

func (v *view) Close() error {
	if v.data == nil {
		return nil
	}
	v.data = nil
	if err := windows.UnmapViewOfFile(v.addr); err != nil {
		return err
	}
	return windows.CloseHandle(v.handle)
}

// File is not supported on windows, the game pages are always shared.
type File struct{}

func NewFile(string) *File {
	return &File{}
}

func (*File) Open(name string, _ int) (Segment, error) {
	return nil, fmt.Errorf("%w: file pages are not supported on windows (%s)",
		ErrSourceUnavailable, name)
}
