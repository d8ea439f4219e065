package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	_, err := m.Open("missing", 4)
	require.ErrorIs(t, err, ErrSourceUnavailable)

	m.Set("page", []byte{1, 2, 3, 4, 5})
	_, err = m.Open("page", 6)
	require.ErrorIs(t, err, ErrSourceUnavailable)

	seg, err := m.Open("page", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, seg.Bytes())

	m.Set("page", []byte{9, 9})
	assert.Equal(t, []byte{9, 9, 3, 4}, seg.Bytes())
	assert.NoError(t, seg.Close())
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "acpmf_static", BaseName(`Local\acpmf_static`))
	assert.Equal(t, "acpmf_static", BaseName("acpmf_static"))
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("tcp", "")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
