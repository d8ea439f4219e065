package sampler

import (
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	cycles   metric.Int64Counter
	overruns metric.Int64Counter
	bytes    metric.Int64Counter
	duration metric.Float64Histogram
}

func newMetrics(meter metric.Meter) *metrics {
	cycles, _ := meter.Int64Counter("sampler_cycles",
		metric.WithDescription("number of published samples"))
	overruns, _ := meter.Int64Counter("sampler_overruns",
		metric.WithDescription("cycles exceeding the sampling period"))
	bytes, _ := meter.Int64Counter("sampler_published_bytes",
		metric.WithDescription("size of published events"),
		metric.WithUnit("By"))
	duration, _ := meter.Float64Histogram("sampler_cycle_duration",
		metric.WithDescription("time to build and publish an event"),
		metric.WithUnit("s"))
	return &metrics{
		cycles:   cycles,
		overruns: overruns,
		bytes:    bytes,
		duration: duration,
	}
}
