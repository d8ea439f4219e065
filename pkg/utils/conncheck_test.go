package utils

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAddr(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"http with port", "http://localhost:8080/api", "localhost:8080", false},
		{"http default", "http://example.com", "example.com:80", false},
		{"https default", "https://example.com/api", "example.com:443", false},
		{"nats default", "nats://broker", "broker:4222", false},
		{"ipv6", "http://[::1]:9000", "[::1]:9000", false},
		{"unknown scheme", "ftp://example.com", "", true},
		{"no host", "localhost", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAddr(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWaitForTCP(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	assert.NoError(t, WaitForTCP(context.Background(), l.Addr().String(), time.Second))

	addr := l.Addr().String()
	l.Close()
	assert.Error(t, WaitForTCP(context.Background(), addr, 300*time.Millisecond))
}
