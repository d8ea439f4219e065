// Package recorder stores events in a local sqlite database for later replay.
package recorder

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
)

type (
	Run struct {
		ID        string
		Channel   string
		StartedAt time.Time
		Events    int
	}
	Event struct {
		Seq        int64
		RecordedAt time.Time
		Payload    []byte
	}
)

// OpenDB opens (or creates) the database at path and migrates it.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err = MigrateDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type (
	Option   func(*Recorder)
	Recorder struct {
		db    *sql.DB
		owned bool
		runID string
		seq   int64
		now   func() time.Time
		l     *log.Logger
	}
)

func WithLogger(l *log.Logger) Option {
	return func(r *Recorder) {
		r.l = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// Create opens the database at path and starts a new run.
// The database is closed by Close.
func Create(ctx context.Context, path, channel string, opts ...Option) (*Recorder, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, &transport.TransportError{Op: "open", Err: err}
	}
	r, err := New(ctx, db, channel, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	r.owned = true
	return r, nil
}

// New starts a new run in db.
func New(ctx context.Context, db *sql.DB, channel string, opts ...Option) (*Recorder, error) {
	ret := &Recorder{
		db:    db,
		runID: uuid.New().String(),
		now:   time.Now,
		l:     log.Default().Named("recorder"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if _, err := db.ExecContext(ctx,
		"insert into run (id, channel, started_at) values (?, ?, ?)",
		ret.runID, channel, ret.now().UTC()); err != nil {
		return nil, &transport.TransportError{Op: "create run", Err: err}
	}
	ret.l.Info("recording", log.String("run", ret.runID))
	return ret, nil
}

func (r *Recorder) RunID() string {
	return r.runID
}

func (r *Recorder) Publish(ctx context.Context, payload []byte) error {
	r.seq++
	if _, err := r.db.ExecContext(ctx,
		"insert into event (run_id, seq, recorded_at, payload) values (?, ?, ?, ?)",
		r.runID, r.seq, r.now().UTC(), string(payload)); err != nil {
		return &transport.TransportError{Op: "insert", Err: err}
	}
	return nil
}

func (r *Recorder) Close() error {
	if r.owned {
		return r.db.Close()
	}
	return nil
}

// Runs lists the recorded runs, latest first
func Runs(ctx context.Context, db *sql.DB) ([]Run, error) {
	rows, err := db.QueryContext(ctx, `
select r.id, r.channel, r.started_at,
	(select count(*) from event e where e.run_id = r.id)
from run r
order by r.started_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := []Run{}
	for rows.Next() {
		var item Run
		if err := rows.Scan(&item.ID, &item.Channel, &item.StartedAt, &item.Events); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

// Events calls fn for each event of run in recording order.
// Iteration stops at the first error returned by fn.
func Events(ctx context.Context, db *sql.DB, runID string, fn func(Event) error) error {
	rows, err := db.QueryContext(ctx,
		"select seq, recorded_at, payload from event where run_id = ? order by seq",
		runID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var e Event
		var payload string
		if err := rows.Scan(&e.Seq, &e.RecordedAt, &payload); err != nil {
			return err
		}
		e.Payload = []byte(payload)
		if err := fn(e); err != nil {
			return err
		}
	}
	return rows.Err()
}
