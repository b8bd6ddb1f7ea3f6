// Package component defines the descriptor contract, the process-wide
// registry, the argument resolver, and the pipeline context that together
// form the core of the pipeline resolution runtime.
//
// Components declare what they provide and require per lifecycle stage as
// plain data on a Descriptor. The registry holds one immutable Registration
// per name. At pipeline build time the builder resolves names against the
// registry; at each lifecycle stage the runner computes call arguments with
// FillArgs from the accumulating Context and the static configuration.
package component

import (
	"log/slog"

	"github.com/kpe/rasa-nlu/config"
	"github.com/kpe/rasa-nlu/depcheck"
	"github.com/kpe/rasa-nlu/metric"
)

// Component is a pluggable processing unit. The concrete processing
// algorithms live outside this module; the runtime only depends on the
// descriptor contract and the stage execution entry point.
type Component interface {
	// Descriptor returns the component's static metadata contract.
	Descriptor() Descriptor

	// Run executes one lifecycle stage. args holds the values resolved for
	// the descriptor's declared Requires of that stage, in declaration
	// order. The returned mapping must contain every context key the
	// descriptor declares in Provides for the stage.
	Run(stage Stage, args []any) (map[string]any, error)

	// PersistedState returns the state to persist after training, or nil.
	PersistedState() any
}

// Factory creates a fresh component instance from configuration and
// dependencies. Factories must not perform expensive work beyond what the
// instance itself needs; availability of external packages has already been
// validated by the builder when a factory runs.
type Factory func(cfg config.Config, deps Dependencies) (Component, error)

// Loader restores a component instance from previously persisted state and
// model metadata instead of initializing it fresh.
type Loader func(cfg config.Config, state any, meta Metadata, deps Dependencies) (Component, error)

// Dependencies provides the external collaborators injected into factories
// and the builder.
type Dependencies struct {
	Logger   *slog.Logger      // Structured logger (can be nil, defaults to slog.Default())
	Resolver depcheck.Resolver // Package availability probe (can be nil, defaults to the build-context resolver)
	Metrics  *metric.Registry  // Metrics registry (can be nil)
}

// GetLogger returns the configured logger or a default logger if none is provided
func (d *Dependencies) GetLogger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// GetLoggerWithComponent returns a logger configured with component context
func (d *Dependencies) GetLoggerWithComponent(componentName string) *slog.Logger {
	return d.GetLogger().With("component", componentName)
}

// GetResolver returns the configured resolver or the default build-context
// resolver if none is provided.
func (d *Dependencies) GetResolver() depcheck.Resolver {
	if d.Resolver != nil {
		return d.Resolver
	}
	return depcheck.NewPackageResolver()
}
