// Package engine assembles the event of a sample.
package engine

import (
	"errors"
	"fmt"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/delta"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/section"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/sector"
)

// ErrEncode is returned if an event could not be built.
// No part of the event is usable in this case.
var ErrEncode = errors.New("event encoding failed")

type (
	Option  func(*Encoder)
	Encoder struct {
		tracker *sector.Tracker
		log     *log.Logger
	}
)

func WithLogger(l *log.Logger) Option {
	return func(e *Encoder) {
		e.log = l
	}
}

func WithTracker(t *sector.Tracker) Option {
	return func(e *Encoder) {
		e.tracker = t
	}
}

func NewEncoder(opts ...Option) *Encoder {
	ret := &Encoder{
		log: log.Default().Named("engine"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tracker == nil {
		ret.tracker = sector.NewTracker(0)
	}
	return ret
}

func (e *Encoder) Tracker() *sector.Tracker {
	return e.tracker
}

// ResetSession resizes the sector tracker for the properties of s.
// Called whenever the properties change.
func (e *Encoder) ResetSession(s *acc.Static) {
	e.tracker.SetSectorCount(int(s.SectorCount))
}

// Encode builds the event of cur. prev nil selects complete mode where every
// field and the properties are part of the event.
func (e *Encoder) Encode(cur, prev *acc.Frame) (*delta.Object, error) {
	if int(cur.Static.SectorCount) != e.tracker.SectorCount() {
		e.ResetSession(cur.Static)
	}
	p := section.Compare(prev)
	b := delta.NewBuilder(prev == nil)

	for _, s := range section.HUD {
		child := b.Sub()
		s.Build(child, cur, p)
		if s.Key == "laptimes" && prev != nil {
			e.prevSector(child, cur, prev)
		}
		b.Child(s.Key, child)
	}
	section.Root(b, cur, p)
	section.Apply(b, section.Physics, cur, p)

	if prev == nil {
		props := b.Sub()
		section.Properties(props, cur.Static)
		b.Child("properties", props)
	} else if cur.SessionChanged(prev) {
		b.Always("newSession", true)
	}

	obj, err := b.Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return obj, nil
}

// Marshal encodes the event of cur as JSON.
func (e *Encoder) Marshal(cur, prev *acc.Frame) ([]byte, error) {
	obj, err := e.Encode(cur, prev)
	if err != nil {
		return nil, err
	}
	data, err := delta.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

// prevSector adds the duration of the sector just left.
func (e *Encoder) prevSector(b *delta.Builder, cur, prev *acc.Frame) {
	c, p := cur.Graphics, prev.Graphics
	if p.CurrentSectorIndex < 0 || c.CurrentSectorIndex == p.CurrentSectorIndex {
		return
	}
	var d int32
	var ok bool
	if c.CompletedLaps > p.CompletedLaps {
		d, ok = e.tracker.FinishLap(p.CurrentSectorIndex, c.CurrentSectorIndex, c.LastTime)
	} else {
		d, ok = e.tracker.Leave(p.CurrentSectorIndex, c.CurrentSectorIndex, c.LastSectorTime)
	}
	if !ok {
		e.log.Debug("sector duration unknown",
			log.Int32("sector", p.CurrentSectorIndex),
			log.Int("cursor", e.tracker.Cursor()))
		return
	}
	b.Always("prevSector", d)
}
