// Package builder resolves component names into validated, instantiated
// component instances: registry lookup, dependency availability checking,
// instantiation via the registered factory or loader, and instance caching
// with a single-flight guarantee.
package builder

import (
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/kpe/rasa-nlu/component"
	"github.com/kpe/rasa-nlu/config"
	"github.com/kpe/rasa-nlu/depcheck"
	"github.com/kpe/rasa-nlu/errors"
	"github.com/kpe/rasa-nlu/pkg/cache"
)

// buildState tracks a single build request through its resolution states.
// A failure in any state is terminal for that request.
type buildState int

const (
	stateUnresolved buildState = iota
	stateNameValidated
	stateDependenciesValidated
	stateInstantiated
)

func (s buildState) String() string {
	switch s {
	case stateUnresolved:
		return "unresolved"
	case stateNameValidated:
		return "name_validated"
	case stateDependenciesValidated:
		return "dependencies_validated"
	case stateInstantiated:
		return "instantiated"
	default:
		return "unknown"
	}
}

// maxSuggestions bounds the closest-name suggestions on unknown-name errors.
const maxSuggestions = 3

// Builder creates and loads component instances by name. Instances are
// cached by (name, relevant configuration projection) so identical requests
// within one builder share a single expensive instantiation; concurrent
// first-use of a key instantiates at most once.
type Builder struct {
	registry *component.Registry
	deps     component.Dependencies
	resolver depcheck.Resolver
	cache    cache.Cache[component.Component]
	group    singleflight.Group
	manifest map[string][]string
	logger   *slog.Logger
}

// Option configures optional builder behavior.
type Option func(*Builder)

// WithoutCache disables instance caching; every request instantiates fresh.
func WithoutCache() Option {
	return func(b *Builder) {
		b.cache = nil
	}
}

// WithManifest supplies a parsed requirements manifest used to enrich
// missing-dependency errors with installable package names.
func WithManifest(manifest map[string][]string) Option {
	return func(b *Builder) {
		b.manifest = manifest
	}
}

// New creates a builder over the given registry. Caching is enabled by
// default and shared by everything built through this builder; independent
// builders never share instances.
func New(registry *component.Registry, deps component.Dependencies, opts ...Option) (*Builder, error) {
	if registry == nil {
		return nil, errors.WrapFatal(errors.ErrInvalidConfig, "Builder", "New", "registry validation")
	}

	instanceCache, err := cache.NewSimple[component.Component]()
	if err != nil {
		return nil, errors.Wrap(err, "Builder", "New", "instance cache setup")
	}

	b := &Builder{
		registry: registry,
		deps:     deps,
		resolver: deps.GetResolver(),
		cache:    instanceCache,
		logger:   deps.GetLogger().With("subsystem", "builder"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// CacheStats returns the instance cache statistics, or nil when caching is
// disabled.
func (b *Builder) CacheStats() *cache.Statistics {
	if b.cache == nil {
		return nil
	}
	return b.cache.Stats()
}

// CreateComponent resolves name and returns a fresh or cached instance.
//
// An empty name is the explicit no-op protocol for optional pipeline slots:
// it returns (nil, nil) without error. An unknown name fails with an
// UnknownComponentError; unavailable package requirements fail with a
// MissingDependencyError. Failures are terminal for the request.
func (b *Builder) CreateComponent(name string, cfg config.Config) (component.Component, error) {
	if name == "" {
		return nil, nil
	}

	registration, err := b.resolve(name)
	if err != nil {
		return nil, err
	}

	return b.instantiate(name, registration, cfg, func() (component.Component, error) {
		instance, err := registration.Factory(cfg, b.deps)
		if err != nil {
			return nil, errors.Wrap(err, "Builder", "CreateComponent", "factory execution")
		}
		if b.deps.Metrics != nil {
			b.deps.Metrics.Core().ComponentsCreated.WithLabelValues(name).Inc()
		}
		return instance, nil
	})
}

// LoadComponent resolves name like CreateComponent, but restores the
// instance from previously persisted state and model metadata via the
// registered loader instead of initializing it fresh. An empty name returns
// (nil, nil), mirroring CreateComponent.
func (b *Builder) LoadComponent(
	name string, cfg config.Config, state any, meta component.Metadata,
) (component.Component, error) {
	if name == "" {
		return nil, nil
	}

	registration, err := b.resolve(name)
	if err != nil {
		return nil, err
	}

	return b.instantiate(name, registration, cfg, func() (component.Component, error) {
		loader := registration.Loader
		if loader == nil {
			// No dedicated loader: fall back to fresh creation.
			instance, err := registration.Factory(cfg, b.deps)
			if err != nil {
				return nil, errors.Wrap(err, "Builder", "LoadComponent", "factory execution")
			}
			return instance, nil
		}
		instance, err := loader(cfg, state, meta, b.deps)
		if err != nil {
			return nil, errors.Wrap(err, "Builder", "LoadComponent", "loader execution")
		}
		if b.deps.Metrics != nil {
			b.deps.Metrics.Core().ComponentsLoaded.WithLabelValues(name).Inc()
		}
		return instance, nil
	})
}

// resolve walks the request through name validation and dependency
// validation, returning the registration on success.
func (b *Builder) resolve(name string) (*component.Registration, error) {
	state := stateUnresolved

	registration, exists := b.registry.Lookup(name)
	if !exists {
		b.failBuild(name, state, "unknown_component")
		return nil, &errors.UnknownComponentError{
			Name:        name,
			Suggestions: b.registry.Closest(name, maxSuggestions),
		}
	}
	state = stateNameValidated

	requirements := registration.Descriptor.Requirements
	if missing := depcheck.Unavailable(b.resolver, requirements); len(missing) > 0 {
		b.failBuild(name, state, "missing_dependency")
		return nil, &errors.MissingDependencyError{
			Component:   name,
			Packages:    missing,
			Installable: depcheck.Enrich(missing, b.manifest),
		}
	}
	state = stateDependenciesValidated

	b.logger.Debug("component resolved", "component", name, "state", state.String())
	return registration, nil
}

// instantiate returns a cached instance for the request's cache key or runs
// build exactly once per key under concurrent first-use.
func (b *Builder) instantiate(
	name string, registration *component.Registration, cfg config.Config,
	build func() (component.Component, error),
) (component.Component, error) {
	if b.cache == nil {
		instance, err := build()
		if err != nil {
			b.failBuild(name, stateDependenciesValidated, "instantiation")
			return nil, err
		}
		return instance, nil
	}

	key := cacheKey(name, registration.Descriptor, cfg)
	if instance, ok := b.cache.Get(key); ok {
		b.logger.Debug("component served from cache", "component", name, "cache_key", key)
		return instance, nil
	}

	// Single-flight: concurrent first-use of a key instantiates at most once.
	result, err, shared := b.group.Do(key, func() (any, error) {
		if instance, ok := b.cache.Get(key); ok {
			return instance, nil
		}
		instance, err := build()
		if err != nil {
			return nil, err
		}
		if _, err := b.cache.Set(key, instance); err != nil {
			return nil, errors.Wrap(err, "Builder", "instantiate", "cache store")
		}
		return instance, nil
	})
	if err != nil {
		b.failBuild(name, stateDependenciesValidated, "instantiation")
		return nil, err
	}

	b.logger.Debug("component instantiated",
		"component", name,
		"state", stateInstantiated.String(),
		"shared", shared)
	return result.(component.Component), nil
}

func (b *Builder) failBuild(name string, state buildState, kind string) {
	b.logger.Debug("component build failed", "component", name, "state", state.String(), "kind", kind)
	if b.deps.Metrics != nil {
		b.deps.Metrics.Core().BuildFailures.WithLabelValues(kind).Inc()
	}
}

// cacheKey derives the canonical cache key for a request: the component
// name plus the deterministic rendering of the configuration restricted to
// the descriptor's declared ConfigKeys. Configurations that agree on the
// relevant keys share an instance regardless of unrelated settings.
func cacheKey(name string, desc component.Descriptor, cfg config.Config) string {
	return name + "@" + cfg.Project(desc.ConfigKeys).CanonicalString()
}
