package natspub

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
	"github.com/mpapenbr/acc-telemetry-bridge/testsupport/tcnats"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "acc.telemetry.42", Subject("acc.telemetry", "42"))
	assert.Equal(t, "42", Subject("", "42"))
}

func TestConnectFailure(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", "x")
	var te *transport.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "connect", te.Op)
}

func TestPublish(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()
	url := tcnats.SetupTestServer(t)

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()
	ch := make(chan *nats.Msg, 1)
	s, err := sub.ChanSubscribe("acc.telemetry.7", ch)
	require.NoError(t, err)
	defer s.Unsubscribe()
	require.NoError(t, sub.Flush())

	p, err := Connect(url, Subject("acc.telemetry", "7"))
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.Publish(ctx, []byte(`{"laps":2}`)))

	select {
	case msg := <-ch:
		assert.Equal(t, `{"laps":2}`, string(msg.Data))
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}
}
