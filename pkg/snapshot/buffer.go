// Package snapshot keeps the current and the previous sample of the pages.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/source"
)

const (
	graphicsPage = iota
	physicsPage
	staticPage
	numPages
)

var (
	pageNames = [numPages]string{acc.GraphicsSegment, acc.PhysicsSegment, acc.StaticSegment}
	pageSizes = [numPages]int{acc.GraphicsSize, acc.PhysicsSize, acc.StaticSize}
)

// Buffer owns copies of the live pages. Capture copies the live pages into
// the current slot, Commit moves the current slot into the previous slot.
type Buffer struct {
	segments [numPages]source.Segment
	cur      [numPages][]byte
	prev     [numPages][]byte
	frame    *acc.Frame
	// prevFrame is nil if there is no previous sample
	prevFrame *acc.Frame
}

// Open opens all pages of src.
func Open(src source.Source) (*Buffer, error) {
	var segments [numPages]source.Segment
	for i := range numPages {
		seg, err := src.Open(pageNames[i], pageSizes[i])
		if err != nil {
			for _, s := range segments[:i] {
				_ = s.Close()
			}
			return nil, fmt.Errorf("open %s: %w", pageNames[i], err)
		}
		segments[i] = seg
	}
	return New(segments[graphicsPage], segments[physicsPage], segments[staticPage]), nil
}

func New(graphics, physics, static source.Segment) *Buffer {
	b := &Buffer{segments: [numPages]source.Segment{graphics, physics, static}}
	for i := range numPages {
		b.cur[i] = make([]byte, pageSizes[i])
		b.prev[i] = make([]byte, pageSizes[i])
	}
	return b
}

// Capture copies the live pages and decodes them. The buffer is unchanged
// if any page is too short.
func (b *Buffer) Capture() (*acc.Frame, error) {
	var live [numPages][]byte
	for i, seg := range b.segments {
		live[i] = seg.Bytes()
		if len(live[i]) < pageSizes[i] {
			return nil, fmt.Errorf("%w: %s has %d bytes, want %d",
				source.ErrSourceUnavailable, pageNames[i], len(live[i]), pageSizes[i])
		}
	}
	for i := range numPages {
		copy(b.cur[i], live[i])
	}
	frame, err := decode(b.cur)
	if err != nil {
		return nil, err
	}
	b.frame = frame
	return frame, nil
}

// Current returns the frame of the last Capture
func (b *Buffer) Current() *acc.Frame {
	return b.frame
}

// Commit copies the captured pages into the previous slot and decodes
// the previous frame from that copy.
func (b *Buffer) Commit() error {
	if b.frame == nil {
		return nil
	}
	for i := range numPages {
		copy(b.prev[i], b.cur[i])
	}
	frame, err := decode(b.prev)
	if err != nil {
		b.prevFrame = nil
		return err
	}
	b.prevFrame = frame
	return nil
}

func (b *Buffer) HasPrevious() bool {
	return b.prevFrame != nil
}

// Previous returns the frame decoded from the committed pages or nil
func (b *Buffer) Previous() *acc.Frame {
	return b.prevFrame
}

// PreviousBytes returns the raw committed page (graphics, physics, static order)
func (b *Buffer) PreviousBytes(page int) []byte {
	if b.prevFrame == nil || page < 0 || page >= numPages {
		return nil
	}
	return b.prev[page]
}

// Reset discards the previous sample. The next event is a complete one.
func (b *Buffer) Reset() {
	b.prevFrame = nil
}

func (b *Buffer) Close() error {
	var errs []error
	for _, s := range b.segments {
		if s != nil {
			errs = append(errs, s.Close())
		}
	}
	return errors.Join(errs...)
}

func decode(pages [numPages][]byte) (*acc.Frame, error) {
	g, err := acc.DecodeGraphics(pages[graphicsPage])
	if err != nil {
		return nil, err
	}
	p, err := acc.DecodePhysics(pages[physicsPage])
	if err != nil {
		return nil, err
	}
	s, err := acc.DecodeStatic(pages[staticPage])
	if err != nil {
		return nil, err
	}
	return &acc.Frame{Graphics: g, Physics: p, Static: s}, nil
}
