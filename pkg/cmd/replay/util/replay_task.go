package util

import (
	"context"
	"database/sql"
	"time"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/recorder"
)

type (
	TaskOption func(*ReplayTask)
	ReplayTask struct {
		db          *sql.DB
		pub         transport.Publisher
		speed       int
		fastForward time.Duration
		wait        func(ctx context.Context, d time.Duration) error
		l           *log.Logger
	}
)

// WithSpeed sets the replay speed factor. 0 replays as fast as possible.
func WithSpeed(speed int) TaskOption {
	return func(r *ReplayTask) {
		r.speed = speed
	}
}

// WithFastForward replays the first d of the recording without delays
func WithFastForward(d time.Duration) TaskOption {
	return func(r *ReplayTask) {
		r.fastForward = d
	}
}

func WithLogger(l *log.Logger) TaskOption {
	return func(r *ReplayTask) {
		r.l = l
	}
}

func withWait(wait func(ctx context.Context, d time.Duration) error) TaskOption {
	return func(r *ReplayTask) {
		r.wait = wait
	}
}

func NewReplayTask(db *sql.DB, pub transport.Publisher, opts ...TaskOption) *ReplayTask {
	ret := &ReplayTask{
		db:    db,
		pub:   pub,
		speed: 1,
		wait:  sleep,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Replay publishes the events of a recorded run. The pauses between events
// follow the recording, divided by the speed factor.
// Returns the number of published events.
// Without WithLogger the logger is taken from ctx.
func (r *ReplayTask) Replay(ctx context.Context, runID string) (int, error) {
	l := r.l
	if l == nil {
		l = log.GetFromContext(ctx).Named("replay")
	}
	var first, last time.Time
	count := 0
	err := recorder.Events(ctx, r.db, runID, func(e recorder.Event) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if first.IsZero() {
			first = e.RecordedAt
		}
		if !last.IsZero() && r.speed > 0 && e.RecordedAt.Sub(first) > r.fastForward {
			delta := e.RecordedAt.Sub(last)
			if delta > 0 {
				wait := delta / time.Duration(r.speed)
				l.Debug("Sleeping",
					log.Time("time", e.RecordedAt),
					log.Duration("delta", delta),
					log.Duration("wait", wait))
				if err := r.wait(ctx, wait); err != nil {
					return err
				}
			}
		}
		last = e.RecordedAt
		if err := r.pub.Publish(ctx, e.Payload); err != nil {
			l.Error("Error publishing event",
				log.Int64("seq", e.Seq), log.ErrorField(err))
			return err
		}
		count++
		return nil
	})
	l.Debug("Replay done", log.Int("events", count))
	return count, err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
