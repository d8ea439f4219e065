package log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Option  func(*options)
	options struct {
		zapOptions []zap.Option
		filter     func(zapcore.Core) zapcore.Core
	}
)

func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.zapOptions = append(o.zapOptions, zap.WithCaller(enabled))
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.zapOptions = append(o.zapOptions, zap.AddCallerSkip(skip))
	}
}

// WithFilter restricts the output by zapfilter rules, e.g. "*:sampler info+:*"
// An invalid rule set is ignored.
func WithFilter(rules string) Option {
	return func(o *options) {
		if rules == "" {
			return
		}
		filter, err := zapfilter.ParseRules(rules)
		if err != nil {
			return
		}
		o.filter = func(core zapcore.Core) zapcore.Core {
			return zapfilter.NewFilteringCore(core, filter)
		}
	}
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

// ForFormat creates a logger for the given format (json, text, auto).
// auto selects text if writer is a terminal.
func ForFormat(format string, writer io.Writer, level Level, opts ...Option) *Logger {
	switch format {
	case "json":
		return New(writer, level, opts...)
	case "text":
		return DevLogger(writer, level, opts...)
	default:
		if isTerminal(writer) {
			return DevLogger(writer, level, opts...)
		}
		return New(writer, level, opts...)
	}
}

func isTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
