package util

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/config"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/httppub"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/natspub"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/recorder"
)

const (
	TransportHTTP   = "http"
	TransportNats   = "nats"
	TransportRecord = "record"
)

func ParseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger from the log flags and makes it the default.
func SetupLogger() *log.Logger {
	logger := log.ForFormat(config.LogFormat,
		os.Stderr,
		ParseLogLevel(config.LogLevel, log.InfoLevel),
		log.WithCaller(true),
		log.AddCallerSkip(1),
		log.WithFilter(config.LogFilter))
	log.ResetDefault(logger)
	return logger
}

// ParseDuration parses a duration flag value
func ParseDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", name, value)
	}
	return d, nil
}

// NewPublisher creates the publisher for kind from the resolved config
func NewPublisher(ctx context.Context, kind string) (transport.Publisher, error) {
	timeout, err := ParseDuration("request-timeout", config.RequestTimeout)
	if err != nil {
		return nil, err
	}
	switch kind {
	case TransportHTTP:
		if config.Channel == "" {
			return nil, fmt.Errorf("a channel is required for transport %s", kind)
		}
		return httppub.New(config.APIURL, config.Channel,
			httppub.WithPassword(config.Password),
			httppub.WithTimeout(timeout))
	case TransportNats:
		return natspub.Connect(config.NatsURL,
			natspub.Subject(config.NatsSubjectPrefix, config.Channel),
			natspub.WithFlushTimeout(timeout))
	case TransportRecord:
		return recorder.Create(ctx, config.RecordDB, config.Channel)
	default:
		return nil, fmt.Errorf("unknown transport %q", kind)
	}
}
