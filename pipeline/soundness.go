package pipeline

import (
	"errors"
	"fmt"

	"github.com/kpe/rasa-nlu/component"
	"github.com/kpe/rasa-nlu/config"
	pkgerrors "github.com/kpe/rasa-nlu/errors"
)

// visibleStages returns the stages whose provides can feed arguments for
// the given stage: init context is available to every later stage, train
// and process each additionally see their own stage's provides.
func visibleStages(stage component.Stage) []component.Stage {
	switch stage {
	case component.StageInit:
		return []component.Stage{component.StageInit}
	case component.StageTrain:
		return []component.Stage{component.StageInit, component.StageTrain}
	case component.StageProcess:
		return []component.Stage{component.StageInit, component.StageProcess}
	case component.StagePersist:
		return []component.Stage{component.StageInit, component.StageTrain, component.StageProcess}
	}
	return nil
}

// CheckSatisfiability proves that every registered component's declared
// requires for the stage can be satisfied in principle under some valid
// pipeline ordering: it resolves each descriptor's requires against the
// union of every registered descriptor's provides for the stage's
// visibility set, plus the stage's base keys and the configuration.
//
// This is a build-time soundness check over the whole registry. It is
// deliberately distinct from the runner's per-pipeline resolution, which
// enforces one concrete ordering: a component that passes here can still
// fail at run time if placed before its providers.
func CheckSatisfiability(registry *component.Registry, cfg config.Config, stage component.Stage) error {
	if !stage.Valid() {
		return pkgerrors.WrapInvalid(pkgerrors.ErrInvalidConfig,
			"Pipeline", "CheckSatisfiability", "stage validation")
	}

	superset := component.NewContext(stage, nil)
	for _, registration := range registry.All() {
		for _, visible := range visibleStages(stage) {
			for _, key := range registration.Descriptor.ProvidesFor(visible) {
				superset.Set(key, nil)
			}
		}
	}

	var errs []error
	for _, registration := range registry.All() {
		desc := registration.Descriptor
		if _, err := component.FillArgs(desc.RequiresFor(stage), superset, cfg); err != nil {
			errs = append(errs, fmt.Errorf("component '%s', stage '%s': %w", desc.Name, stage, err))
		}
	}
	return joinErrors(errs)
}

// CheckAllStages runs CheckSatisfiability for every lifecycle stage.
func CheckAllStages(registry *component.Registry, cfg config.Config) error {
	var errs []error
	for _, stage := range component.Stages() {
		if err := CheckSatisfiability(registry, cfg, stage); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
