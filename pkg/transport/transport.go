// Package transport defines the contract for publishing events.
package transport

import (
	"context"
	"fmt"
)

// Publisher hands a serialized event to a remote party.
// Publishers do not retry, any error ends the sampling loop.
type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
	Close() error
}

// TransportError signals that the payload could not be delivered.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError signals that the remote party rejected the payload.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Body)
}

// Func adapts a function to a Publisher
type Func func(ctx context.Context, payload []byte) error

func (f Func) Publish(ctx context.Context, payload []byte) error {
	return f(ctx, payload)
}

func (f Func) Close() error { return nil }
