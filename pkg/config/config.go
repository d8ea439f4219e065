package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text, json or auto
	LogFilter         string // zapfilter rules, e.g. "*:sampler debug+:*"
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // otlp grpc endpoint, metrics are printed to stdout if empty
	APIURL            string // base URL of the channel API
	Channel           string // channel id to publish to
	Password          string // password of the channel
	Transport         string // http, nats or record
	RequestTimeout    string // timeout for a single publish request
	NatsURL           string // URL of the NATS server
	NatsSubjectPrefix string // events are published to <prefix>.<channel>
	RecordDB          string // path of the sqlite database used by the recorder
	Period            string // target duration of a sampling cycle
	Source            string // shared or file
	SourceDir         string // directory of the page files (file source)
	LockFile          string // lock to prevent multiple samplers on one machine
	WaitForServices   string // duration to wait for the publish target to be reachable
)
