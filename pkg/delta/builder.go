package delta

import (
	"fmt"
)

// SentinelLapTime is the first lap time (ms) the game uses for
// "no valid time yet". Times at or above are never emitted.
const SentinelLapTime = 600000

// ValidLapTime reports whether ms is a real lap or sector time.
func ValidLapTime(ms int32) bool {
	return ms >= 0 && ms < SentinelLapTime
}

// Builder collects the changed fields of one object.
// In complete mode every field is emitted regardless of the previous value.
// The first error sticks, all later calls are no-ops.
type Builder struct {
	obj      *Object
	complete bool
	err      error
}

func NewBuilder(complete bool) *Builder {
	return &Builder{obj: NewObject(), complete: complete}
}

// Sub creates a builder for a child object using the same mode.
func (b *Builder) Sub() *Builder {
	return NewBuilder(b.complete)
}

func (b *Builder) Complete() bool {
	return b.complete
}

func (b *Builder) set(key string, v any) {
	if b.err != nil {
		return
	}
	if err := b.obj.Set(key, v); err != nil {
		b.err = err
	}
}

// Always emits v without comparison.
func (b *Builder) Always(key string, v any) *Builder {
	b.set(key, v)
	return b
}

func (b *Builder) Int(key string, cur, prev int32) *Builder {
	if b.complete || cur != prev {
		b.set(key, cur)
	}
	return b
}

// Bool emits an int flag as JSON boolean
func (b *Builder) Bool(key string, cur, prev int32) *Builder {
	if b.complete || (cur != 0) != (prev != 0) {
		b.set(key, cur != 0)
	}
	return b
}

func (b *Builder) String(key, cur, prev string) *Builder {
	if b.complete || cur != prev {
		b.set(key, cur)
	}
	return b
}

// Enum emits the name of the value, compared by name.
func (b *Builder) Enum(key string, cur, prev fmt.Stringer) *Builder {
	return b.String(key, cur.String(), prev.String())
}

// Float emits cur rounded to three decimal places if the rounded values differ.
func (b *Builder) Float(key string, cur, prev float32) *Builder {
	if b.err != nil {
		return b
	}
	c, err := Round32(cur)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", key, err)
		return b
	}
	b.number(key, c, func() (Number, error) { return Round32(prev) })
	return b
}

func (b *Builder) Float64(key string, cur, prev float64) *Builder {
	if b.err != nil {
		return b
	}
	c, err := Round64(cur)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", key, err)
		return b
	}
	b.number(key, c, func() (Number, error) { return Round64(prev) })
	return b
}

func (b *Builder) number(key string, cur Number, prev func() (Number, error)) {
	if b.complete {
		b.set(key, cur)
		return
	}
	// a garbage previous value is treated as changed
	if p, err := prev(); err == nil && p.Equal(cur) {
		return
	}
	b.set(key, cur)
}

// LapTime emits a lap or sector time in ms. Sentinel values are never emitted.
func (b *Builder) LapTime(key string, cur, prev int32) *Builder {
	if !ValidLapTime(cur) {
		return b
	}
	return b.Int(key, cur, prev)
}

// Child adds the object of child under key if it contains at least one field.
func (b *Builder) Child(key string, child *Builder) *Builder {
	if b.err != nil {
		return b
	}
	if child.err != nil {
		b.err = fmt.Errorf("%s: %w", key, child.err)
		return b
	}
	if child.obj.IsEmpty() {
		return b
	}
	b.set(key, child.obj)
	return b
}

// Wheels emits four floats as object with the keys fl, fr, rl, rr.
func (b *Builder) Wheels(key string, cur, prev [4]float32) *Builder {
	w := b.Sub()
	for i, k := range wheelKeys {
		w.Float(k, cur[i], prev[i])
	}
	return b.Child(key, w)
}

var wheelKeys = [4]string{"fl", "fr", "rl", "rr"}

func (b *Builder) Err() error {
	return b.err
}

// Result returns the collected object or the first error.
func (b *Builder) Result() (*Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.obj, nil
}
