package notifier

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Option func(*options)

type options struct {
	logger  zerolog.Logger
	name    string
	metrics *Metrics
}

func newOptions(subject any, opts []Option) options {
	o := options{
		logger: zerolog.Nop(),
		name:   fmt.Sprintf("%T", subject),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for subscription and publish diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName labels the Subject in logs and metrics. Defaults to the Subject's Go type.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}
