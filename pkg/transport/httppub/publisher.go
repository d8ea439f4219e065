// Package httppub publishes events to the channel API.
package httppub

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
)

const (
	PasswordHeader = "Channel-Password"
	maxBodyLength  = 4096
)

type (
	Option    func(*Publisher)
	Publisher struct {
		client   *http.Client
		endpoint string
		password string
		timeout  time.Duration
		l        *log.Logger
	}
)

func WithClient(c *http.Client) Option {
	return func(p *Publisher) {
		p.client = c
	}
}

func WithPassword(password string) Option {
	return func(p *Publisher) {
		p.password = password
	}
}

// WithTimeout limits a single publish request
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Publisher) {
		p.l = l
	}
}

// New creates a publisher posting to <baseURL>/publish/<channel>
func New(baseURL, channel string, opts ...Option) (*Publisher, error) {
	endpoint, err := url.JoinPath(baseURL, "publish", channel)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", baseURL, err)
	}
	ret := &Publisher{
		client:   http.DefaultClient,
		endpoint: endpoint,
		timeout:  5 * time.Second,
		l:        log.Default().Named("http"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

func (p *Publisher) Endpoint() string {
	return p.endpoint
}

func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint,
		bytes.NewReader(payload))
	if err != nil {
		return &transport.TransportError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.password != "" {
		req.Header.Set(PasswordHeader, p.password)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return &transport.TransportError{Op: "post", Err: err}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyLength))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &transport.ServerError{Status: resp.StatusCode, Body: string(body)}
	}
	p.l.Debug("published", log.Int("bytes", len(payload)), log.Int("status", resp.StatusCode))
	return nil
}

func (p *Publisher) Close() error {
	p.client.CloseIdleConnections()
	return nil
}
