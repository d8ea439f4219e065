//nolint:funlen // ok for tests
package httppub

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
)

func TestPublish(t *testing.T) {
	var gotPath, gotPassword, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPassword = r.Header.Get(PasswordHeader)
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p, err := New(srv.URL+"/api", "42", WithPassword("secret"))
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Publish(context.Background(), []byte(`{"laps":1}`)))
	assert.Equal(t, "/api/publish/42", gotPath)
	assert.Equal(t, "secret", gotPassword)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"laps":1}`, string(gotBody))
}

func TestPublishServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid password"))
	}))
	defer srv.Close()

	p, err := New(srv.URL, "1")
	require.NoError(t, err)
	err = p.Publish(context.Background(), []byte(`{}`))

	var se *transport.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)
	assert.Equal(t, "invalid password", se.Body)
}

func TestPublishTransportError(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	p, err := New(srv.URL, "1", WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	err = p.Publish(context.Background(), []byte(`{}`))

	var te *transport.TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
