package flattrie

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures compilation and fixed-arena builds.
type Options struct {
	log logger.Logger
}

type Option func(*Options)

// WithLogger enables debug logging of compile statistics and capacity
// retries. Without it nothing is logged.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *Options) debugf(format string, args ...any) {
	if o.log == nil {
		return
	}
	o.log.Debugf(format, args...)
}
