package component

import (
	"fmt"

	"github.com/kpe/rasa-nlu/errors"
)

// Stage identifies a component lifecycle stage.
type Stage string

// Lifecycle stages, in execution order.
const (
	StageInit    Stage = "pipeline_init"
	StageTrain   Stage = "train"
	StageProcess Stage = "process"
	StagePersist Stage = "persist"
)

// Stages lists all lifecycle stages in execution order.
func Stages() []Stage {
	return []Stage{StageInit, StageTrain, StageProcess, StagePersist}
}

// Valid reports whether s is a known lifecycle stage.
func (s Stage) Valid() bool {
	switch s {
	case StageInit, StageTrain, StageProcess, StagePersist:
		return true
	}
	return false
}

// String returns the stage identifier.
func (s Stage) String() string {
	return string(s)
}

// BaseKeys returns the context keys seeded before any component runs the
// stage: training data for train, the input text for process.
func (s Stage) BaseKeys() []string {
	switch s {
	case StageTrain:
		return []string{"training_data"}
	case StageProcess:
		return []string{"text"}
	}
	return nil
}

// Descriptor is the static metadata contract of a component: its unique
// name, the context keys it provides per lifecycle stage, the parameter
// names its stage methods require, its external package requirements, and
// the configuration keys relevant to instance caching.
//
// Required parameters are explicit declarations, not derived from method
// signatures: the descriptor table itself is the contract, validated
// independently of any implementation.
type Descriptor struct {
	// Name uniquely identifies the component across the registry.
	Name string `yaml:"name"`

	// Provides maps a lifecycle stage to the context keys the component
	// guarantees to add after executing that stage.
	Provides map[Stage][]string `yaml:"provides"`

	// Requires maps a lifecycle stage to the ordered parameter names of
	// the stage's method.
	Requires map[Stage][]string `yaml:"requires"`

	// Requirements lists external packages the component needs.
	Requirements []string `yaml:"requirements"`

	// ConfigKeys names the configuration keys relevant to this component.
	// The builder caches instances by (name, projection of these keys).
	ConfigKeys []string `yaml:"config_keys"`
}

// Validate checks the descriptor for structural problems: an invalid name or
// an unknown lifecycle stage in the provides/requires declarations.
func (d Descriptor) Validate() error {
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	for stage := range d.Provides {
		if !stage.Valid() {
			return errors.WrapInvalid(
				fmt.Errorf("descriptor '%s' provides for unknown stage '%s'", d.Name, stage),
				"Descriptor", "Validate", "provides stage check")
		}
	}
	for stage := range d.Requires {
		if !stage.Valid() {
			return errors.WrapInvalid(
				fmt.Errorf("descriptor '%s' requires for unknown stage '%s'", d.Name, stage),
				"Descriptor", "Validate", "requires stage check")
		}
	}
	return nil
}

// ProvidesFor returns the context keys provided at the given stage.
func (d Descriptor) ProvidesFor(stage Stage) []string {
	return d.Provides[stage]
}

// RequiresFor returns the declared parameter names for the given stage.
func (d Descriptor) RequiresFor(stage Stage) []string {
	return d.Requires[stage]
}
