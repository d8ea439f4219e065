// Package source provides read access to the shared memory pages.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrSourceUnavailable = errors.New("source unavailable")

// Segment is a read only view of a page. Bytes may change at any time
// as the game writes the page.
type Segment interface {
	Bytes() []byte
	Close() error
}

type Source interface {
	// Open returns a view of size bytes of the named segment.
	Open(name string, size int) (Segment, error)
}

const (
	KindShared = "shared"
	KindFile   = "file"
)

// New creates a source of the given kind. dir is used by file sources.
func New(kind, dir string) (Source, error) {
	switch kind {
	case KindShared:
		return newShared()
	case KindFile:
		return NewFile(dir), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrSourceUnavailable, kind)
	}
}

// BaseName strips the namespace of a segment name (Local\acpmf_static -> acpmf_static)
func BaseName(name string) string {
	if idx := strings.LastIndex(name, `\`); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// Memory is a source backed by byte slices. Writes by Set become visible
// to opened segments.
type Memory struct {
	mu    sync.Mutex
	pages map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{pages: map[string][]byte{}}
}

// Set copies data into the page name. The page grows if needed.
func (m *Memory) Set(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page := m.pages[name]
	if len(page) < len(data) {
		page = make([]byte, len(data))
		m.pages[name] = page
	}
	copy(page, data)
}

func (m *Memory) Open(name string, size int) (Segment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page, ok := m.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", ErrSourceUnavailable, name)
	}
	if len(page) < size {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
			ErrSourceUnavailable, name, len(page), size)
	}
	return &memorySegment{m: m, name: name, size: size}, nil
}

type memorySegment struct {
	m    *Memory
	name string
	size int
}

func (s *memorySegment) Bytes() []byte {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return bytes.Clone(s.m.pages[s.name][:s.size])
}

func (s *memorySegment) Close() error { return nil }
