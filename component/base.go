package component

import (
	"fmt"

	"github.com/kpe/rasa-nlu/config"
	"github.com/kpe/rasa-nlu/errors"
)

// Base is the declaration-layer component: it fulfils every stage contract
// by emitting its declared provides keys with nil values. The built-in
// descriptor catalog registers Base-backed components so templates and
// satisfiability can be validated without the concrete processing
// algorithms, which live outside this module and implement Component
// directly.
type Base struct {
	desc  Descriptor
	cfg   config.Config
	state any
}

// NewBase creates a declaration-layer component for desc.
func NewBase(desc Descriptor, cfg config.Config) *Base {
	return &Base{desc: desc, cfg: cfg}
}

// Descriptor returns the component's static metadata contract.
func (b *Base) Descriptor() Descriptor {
	return b.desc
}

// Run fulfils the stage contract by providing each declared context key.
func (b *Base) Run(stage Stage, _ []any) (map[string]any, error) {
	if !stage.Valid() {
		return nil, errors.WrapInvalid(
			fmt.Errorf("unknown stage '%s'", stage),
			"Base", "Run", "stage validation")
	}
	provided := make(map[string]any)
	for _, key := range b.desc.Provides[stage] {
		provided[key] = nil
	}
	return provided, nil
}

// PersistedState returns the restored state, or nil for fresh instances.
func (b *Base) PersistedState() any {
	return b.state
}

// BaseFactory returns a Factory producing Base instances for desc.
func BaseFactory(desc Descriptor) Factory {
	return func(cfg config.Config, _ Dependencies) (Component, error) {
		return NewBase(desc, cfg), nil
	}
}

// BaseLoader returns a Loader restoring Base instances for desc. The
// persisted state is carried through to PersistedState.
func BaseLoader(desc Descriptor) Loader {
	return func(cfg config.Config, state any, _ Metadata, _ Dependencies) (Component, error) {
		b := NewBase(desc, cfg)
		b.state = state
		return b, nil
	}
}
