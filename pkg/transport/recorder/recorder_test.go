package recorder

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")
	start := time.Date(2024, 4, 28, 11, 10, 12, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return start.Add(time.Duration(tick) * time.Second)
	}

	r, err := Create(ctx, path, "42", WithClock(clock))
	require.NoError(t, err)
	_, err = uuid.Parse(r.RunID())
	require.NoError(t, err)

	require.NoError(t, r.Publish(ctx, []byte(`{"laps":0}`)))
	require.NoError(t, r.Publish(ctx, []byte(`{"laps":1}`)))
	runID := r.RunID()
	require.NoError(t, r.Close())

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	runs, err := Runs(ctx, db)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, "42", runs[0].Channel)
	assert.Equal(t, 2, runs[0].Events)

	var got []string
	err = Events(ctx, db, runID, func(e Event) error {
		got = append(got, string(e.Payload))
		assert.Equal(t, int64(len(got)), e.Seq)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{`{"laps":0}`, `{"laps":1}`}, got)
}

func TestEventsStop(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDB(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer db.Close()

	r, err := New(ctx, db, "1")
	require.NoError(t, err)
	for range 3 {
		require.NoError(t, r.Publish(ctx, []byte(`{}`)))
	}
	// the database is not owned by the recorder
	require.NoError(t, r.Close())
	require.NoError(t, db.PingContext(ctx))

	stop := errors.New("stop")
	calls := 0
	err = Events(ctx, db, r.RunID(), func(Event) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestMigrateTwice(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer db.Close()
	assert.NoError(t, MigrateDB(db))
}
