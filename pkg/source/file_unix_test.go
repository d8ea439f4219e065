//go:build !windows

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "acpmf_physics")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o600))

	f := NewFile(dir)
	seg, err := f.Open(`Local\acpmf_physics`, 8)
	require.NoError(t, err)
	defer seg.Close()
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, seg.Bytes())

	// writes by other processes are visible through the mapping
	w, err := os.OpenFile(path, os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = w.WriteAt([]byte{42}, 0)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, byte(42), seg.Bytes()[0])

	_, err = f.Open(`Local\acpmf_physics`, 16)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	_, err = f.Open(`Local\acpmf_graphics`, 8)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestSharedNotSupported(t *testing.T) {
	_, err := New(KindShared, "")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
