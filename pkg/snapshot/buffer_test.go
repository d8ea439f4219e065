package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/source"
	"github.com/mpapenbr/acc-telemetry-bridge/testsupport/basedata"
)

func sampleSource() *source.Memory {
	g, p, s := basedata.SamplePages()
	m := source.NewMemory()
	m.Set(acc.GraphicsSegment, g)
	m.Set(acc.PhysicsSegment, p)
	m.Set(acc.StaticSegment, s)
	return m
}

func TestBufferLifecycle(t *testing.T) {
	m := sampleSource()
	b, err := Open(m)
	require.NoError(t, err)
	defer b.Close()

	assert.False(t, b.HasPrevious())
	assert.Nil(t, b.Previous())

	f, err := b.Capture()
	require.NoError(t, err)
	assert.Equal(t, int32(3), f.Graphics.Position)
	assert.Equal(t, "monza", f.Static.TrackName())
	assert.False(t, b.HasPrevious())

	require.NoError(t, b.Commit())
	require.True(t, b.HasPrevious())
	assert.NotSame(t, f, b.Previous())
	assert.Equal(t, f, b.Previous())

	next := basedata.SampleGraphicsNextLap()
	data, err := acc.Encode(next)
	require.NoError(t, err)
	m.Set(acc.GraphicsSegment, data)

	f2, err := b.Capture()
	require.NoError(t, err)
	assert.Equal(t, int32(1), f2.Graphics.CompletedLaps)
	assert.Equal(t, int32(0), b.Previous().Graphics.CompletedLaps)

	require.NoError(t, b.Commit())
	assert.Equal(t, data, b.PreviousBytes(graphicsPage))

	b.Reset()
	assert.False(t, b.HasPrevious())
	assert.Nil(t, b.PreviousBytes(graphicsPage))
}

type shortSegment struct{}

func (shortSegment) Bytes() []byte { return make([]byte, 8) }
func (shortSegment) Close() error  { return nil }

func TestBufferCaptureShortPage(t *testing.T) {
	m := sampleSource()
	g, err := m.Open(acc.GraphicsSegment, acc.GraphicsSize)
	require.NoError(t, err)
	s, err := m.Open(acc.StaticSegment, acc.StaticSize)
	require.NoError(t, err)

	b := New(g, shortSegment{}, s)
	_, err = b.Capture()
	require.ErrorIs(t, err, source.ErrSourceUnavailable)
	assert.Nil(t, b.Current())
	require.NoError(t, b.Commit())
	assert.False(t, b.HasPrevious())
}

func TestBufferOpenMissingPage(t *testing.T) {
	m := source.NewMemory()
	g, _, _ := basedata.SamplePages()
	m.Set(acc.GraphicsSegment, g)
	_, err := Open(m)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}

func TestBufferPreviousIsOwnedCopy(t *testing.T) {
	m := sampleSource()
	b, err := Open(m)
	require.NoError(t, err)
	defer b.Close()

	f, err := b.Capture()
	require.NoError(t, err)
	require.NoError(t, b.Commit())

	// changes to the captured frame or the live pages do not reach the previous sample
	f.Graphics.Position = 99
	next := basedata.SampleGraphicsNextLap()
	next.Position = 7
	data, err := acc.Encode(next)
	require.NoError(t, err)
	m.Set(acc.GraphicsSegment, data)
	_, err = b.Capture()
	require.NoError(t, err)

	assert.Equal(t, int32(3), b.Previous().Graphics.Position)
	prev, err := acc.DecodeGraphics(b.PreviousBytes(graphicsPage))
	require.NoError(t, err)
	assert.Equal(t, *b.Previous().Graphics, *prev)
}
