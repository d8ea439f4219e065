// Package sampler runs the sampling loop.
package sampler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/acc"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/engine"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/snapshot"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
)

const scope = "github.com/mpapenbr/acc-telemetry-bridge/pkg/sampler"

type (
	Option  func(*Sampler)
	Sampler struct {
		buf       *snapshot.Buffer
		enc       *engine.Encoder
		pub       transport.Publisher
		period    time.Duration
		idle      time.Duration
		l         *log.Logger
		meter     metric.Meter
		tracer    trace.Tracer
		metrics   *metrics
		ready     chan struct{}
		readyOnce sync.Once
		inSession bool
	}
)

// WithPeriod sets the target duration of one cycle
func WithPeriod(d time.Duration) Option {
	return func(s *Sampler) {
		s.period = d
	}
}

// WithIdlePeriod sets the poll interval while the player is not in the car.
// Defaults to the sampling period.
func WithIdlePeriod(d time.Duration) Option {
	return func(s *Sampler) {
		s.idle = d
	}
}

func WithEncoder(e *engine.Encoder) Option {
	return func(s *Sampler) {
		s.enc = e
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Sampler) {
		s.l = l
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Sampler) {
		s.meter = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Sampler) {
		s.tracer = t
	}
}

func New(buf *snapshot.Buffer, pub transport.Publisher, opts ...Option) *Sampler {
	ret := &Sampler{
		buf:    buf,
		pub:    pub,
		period: time.Second,
		l:      log.Default().Named("sampler"),
		meter:  otel.Meter(scope),
		tracer: otel.Tracer(scope),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.enc == nil {
		ret.enc = engine.NewEncoder(engine.WithLogger(ret.l.Named("engine")))
	}
	if ret.idle <= 0 {
		ret.idle = ret.period
	}
	ret.metrics = newMetrics(ret.meter)
	return ret
}

// Ready is closed after the pages were read for the first time
func (s *Sampler) Ready() <-chan struct{} {
	return s.ready
}

// Run samples the pages until ctx is done. Cancellation is not an error.
// Any failure to build or publish an event ends the loop.
func (s *Sampler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			s.l.Debug("sampler stopped")
			return nil
		}
		start := time.Now()
		frame, err := s.buf.Capture()
		if err != nil {
			return err
		}
		s.readyOnce.Do(func() { close(s.ready) })

		if !frame.InSession() {
			s.leaveSession(frame)
			if !sleep(ctx, s.idle) {
				return nil
			}
			continue
		}
		if !s.inSession {
			s.l.Info("player in car", log.String("track", frame.Static.TrackName()),
				log.String("car", frame.Static.CarModelName()))
			s.inSession = true
		}

		if err := s.cycle(ctx, frame); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		elapsed := time.Since(start)
		s.metrics.duration.Record(ctx, elapsed.Seconds())
		wait := s.period - elapsed
		if wait <= 0 {
			s.l.Warn("sampling period exceeded",
				log.Duration("elapsed", elapsed), log.Duration("period", s.period))
			s.metrics.overruns.Add(ctx, 1)
			continue
		}
		if !sleep(ctx, wait) {
			return nil
		}
	}
}

// cycle publishes the event of frame and commits it as previous sample.
func (s *Sampler) cycle(ctx context.Context, frame *acc.Frame) error {
	prev := s.buf.Previous()
	if prev != nil && *prev.Static != *frame.Static {
		s.l.Info("session properties changed",
			log.String("track", frame.Static.TrackName()),
			log.Int32("sectors", frame.Static.SectorCount))
		s.buf.Reset()
		prev = nil
	}
	if prev == nil {
		s.enc.ResetSession(frame.Static)
	}

	ctx, span := s.tracer.Start(ctx, "cycle",
		trace.WithAttributes(attribute.Bool("complete", prev == nil)))
	defer span.End()

	payload, err := s.enc.Marshal(frame, prev)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("bytes", len(payload)))
	if s.l.IsDebugEnabled() {
		s.l.Debug("event", log.ByteString("payload", payload))
	}
	if err := s.pub.Publish(ctx, payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		return fmt.Errorf("publish: %w", err)
	}
	if err := s.buf.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.metrics.cycles.Add(ctx, 1)
	s.metrics.bytes.Add(ctx, int64(len(payload)))
	return nil
}

// leaveSession drops the previous sample. The next event after the
// player returns is a complete one.
func (s *Sampler) leaveSession(frame *acc.Frame) {
	if s.inSession {
		s.l.Info("player left car", log.String("status", frame.Graphics.Status.String()))
		s.inSession = false
	}
	s.buf.Reset()
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
