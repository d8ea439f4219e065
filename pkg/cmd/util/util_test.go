package util

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/config"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/httppub"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/recorder"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.WarnLevel, ParseLogLevel("warn", log.InfoLevel))
	assert.Equal(t, log.InfoLevel, ParseLogLevel("chatty", log.InfoLevel))
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("period", "250ms")
	require.NoError(t, err)
	assert.Equal(t, "250ms", d.String())
	_, err = ParseDuration("period", "0s")
	assert.Error(t, err)
	_, err = ParseDuration("period", "soon")
	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	config.RequestTimeout = "1s"
	config.APIURL = "http://localhost:8080/api"
	config.Channel = "42"
	config.RecordDB = filepath.Join(t.TempDir(), "events.db")

	p, err := NewPublisher(context.Background(), TransportHTTP)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/publish/42", p.(*httppub.Publisher).Endpoint())

	p, err = NewPublisher(context.Background(), TransportRecord)
	require.NoError(t, err)
	assert.NotEmpty(t, p.(*recorder.Recorder).RunID())
	require.NoError(t, p.Close())

	_, err = NewPublisher(context.Background(), "smoke-signal")
	assert.Error(t, err)

	config.Channel = ""
	_, err = NewPublisher(context.Background(), TransportHTTP)
	assert.Error(t, err)
}
