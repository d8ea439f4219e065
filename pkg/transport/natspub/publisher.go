// Package natspub publishes events to a NATS subject.
package natspub

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
)

type (
	Option    func(*Publisher)
	Publisher struct {
		conn    *nats.Conn
		subject string
		timeout time.Duration
		owned   bool
		l       *log.Logger
	}
)

func WithLogger(l *log.Logger) Option {
	return func(p *Publisher) {
		p.l = l
	}
}

// WithFlushTimeout limits the wait for the server acknowledging the publish
func WithFlushTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// Subject returns the subject of channel (<prefix>.<channel>)
func Subject(prefix, channel string) string {
	if prefix == "" {
		return channel
	}
	return prefix + "." + channel
}

// Connect connects to url. The connection is closed by Close.
func Connect(url, subject string, opts ...Option) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("atb"))
	if err != nil {
		return nil, &transport.TransportError{Op: "connect", Err: err}
	}
	p := New(conn, subject, opts...)
	p.owned = true
	return p, nil
}

func New(conn *nats.Conn, subject string, opts ...Option) *Publisher {
	ret := &Publisher{
		conn:    conn,
		subject: subject,
		timeout: 5 * time.Second,
		l:       log.Default().Named("nats"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return &transport.TransportError{Op: "publish", Err: err}
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return &transport.TransportError{Op: "flush", Err: fmt.Errorf("subject %s: %w", p.subject, err)}
	}
	p.l.Debug("published", log.String("subject", p.subject), log.Int("bytes", len(payload)))
	return nil
}

func (p *Publisher) Close() error {
	if p.owned {
		p.conn.Close()
	}
	return nil
}
