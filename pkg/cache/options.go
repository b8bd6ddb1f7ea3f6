package cache

import "github.com/prometheus/client_golang/prometheus"

// cacheOptions holds optional cache configuration.
type cacheOptions struct {
	metricsReg    prometheus.Registerer
	metricsPrefix string
}

// Option configures optional cache behavior.
type Option func(*cacheOptions)

// WithMetrics exposes cache statistics as Prometheus metrics under the given
// subsystem prefix.
func WithMetrics(reg prometheus.Registerer, prefix string) Option {
	return func(o *cacheOptions) {
		o.metricsReg = reg
		o.metricsPrefix = prefix
	}
}

func applyOptions(opts []Option) *cacheOptions {
	options := &cacheOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
