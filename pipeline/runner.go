package pipeline

import (
	"log/slog"
	"time"

	"github.com/kpe/rasa-nlu/builder"
	"github.com/kpe/rasa-nlu/component"
	"github.com/kpe/rasa-nlu/config"
	"github.com/kpe/rasa-nlu/errors"
	"github.com/kpe/rasa-nlu/metric"
)

// Pipeline is an ordered sequence of resolved component instances sharing
// one static configuration. Execution is strictly sequential in declared
// order: a component's inputs may depend on an earlier component's outputs.
type Pipeline struct {
	components []component.Component
	cfg        config.Config
	logger     *slog.Logger
	metrics    *metric.Registry
}

// Assemble resolves an ordered list of component names through the builder
// into a runnable pipeline. Empty names are optional slots and are skipped.
// Assembly is fail-fast: the first unresolvable component aborts the build
// before any component executes a stage.
func Assemble(names []string, cfg config.Config, b *builder.Builder, deps component.Dependencies) (*Pipeline, error) {
	components := make([]component.Component, 0, len(names))
	for _, name := range names {
		instance, err := b.CreateComponent(name, cfg)
		if err != nil {
			return nil, errors.Wrap(err, "Pipeline", "Assemble", "component resolution")
		}
		if instance == nil {
			continue
		}
		components = append(components, instance)
	}
	return New(components, cfg, deps), nil
}

// New creates a pipeline over already-resolved component instances.
func New(components []component.Component, cfg config.Config, deps component.Dependencies) *Pipeline {
	return &Pipeline{
		components: components,
		cfg:        cfg,
		logger:     deps.GetLogger().With("subsystem", "pipeline"),
		metrics:    deps.Metrics,
	}
}

// Components returns the pipeline's components in execution order.
func (p *Pipeline) Components() []component.Component {
	return p.components
}

// Init runs the pipeline_init stage across the pipeline.
func (p *Pipeline) Init() (*component.Context, error) {
	return p.RunStage(component.StageInit, nil)
}

// Train runs the train stage, seeding the context with the training data.
func (p *Pipeline) Train(trainingData any) (*component.Context, error) {
	return p.RunStage(component.StageTrain, map[string]any{"training_data": trainingData})
}

// Process runs the process stage for one input text.
func (p *Pipeline) Process(text string) (*component.Context, error) {
	return p.RunStage(component.StageProcess, map[string]any{"text": text})
}

// Persist runs the persist stage across the pipeline.
func (p *Pipeline) Persist() (*component.Context, error) {
	return p.RunStage(component.StagePersist, nil)
}

// RunStage executes one lifecycle stage across the pipeline in order. The
// context is seeded with the stage's base keys, each component's arguments
// are resolved from the context so far plus the static configuration, and
// the component's declared provides are folded into the context after its
// invocation. A component that fails to provide a declared key aborts with
// a ContractViolationError. The returned context holds everything the
// traversal accumulated; it is discarded by the caller when the invocation
// ends.
func (p *Pipeline) RunStage(stage component.Stage, seed map[string]any) (*component.Context, error) {
	if !stage.Valid() {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "Pipeline", "RunStage", "stage validation")
	}

	ctx := component.NewContext(stage, seed)
	p.logger.Debug("stage traversal started",
		"stage", stage.String(),
		"run_id", ctx.ID(),
		"components", len(p.components))

	for _, comp := range p.components {
		desc := comp.Descriptor()

		args, err := component.FillArgs(desc.RequiresFor(stage), ctx, p.cfg)
		if err != nil {
			p.recordStage(desc.Name, stage, "unsatisfied")
			return nil, errors.Wrap(err, "Pipeline", "RunStage", "argument resolution for '"+desc.Name+"'")
		}

		started := time.Now()
		provided, err := comp.Run(stage, args)
		if p.metrics != nil {
			p.metrics.Core().StageDuration.
				WithLabelValues(desc.Name, stage.String()).
				Observe(time.Since(started).Seconds())
		}
		if err != nil {
			p.recordStage(desc.Name, stage, "error")
			return nil, errors.Wrap(err, "Pipeline", "RunStage", "stage execution for '"+desc.Name+"'")
		}

		if missing := missingProvides(desc.ProvidesFor(stage), provided); len(missing) > 0 {
			p.recordStage(desc.Name, stage, "contract_violation")
			return nil, &errors.ContractViolationError{
				Component: desc.Name,
				Stage:     stage.String(),
				Missing:   missing,
			}
		}

		ctx.Fold(provided)
		p.recordStage(desc.Name, stage, "ok")
	}

	p.logger.Debug("stage traversal finished",
		"stage", stage.String(),
		"run_id", ctx.ID(),
		"context_keys", ctx.Len())
	return ctx, nil
}

func (p *Pipeline) recordStage(name string, stage component.Stage, status string) {
	if p.metrics != nil {
		p.metrics.Core().StageExecutions.WithLabelValues(name, stage.String(), status).Inc()
	}
}

// missingProvides returns the declared keys absent from the provided
// mapping, in declaration order.
func missingProvides(declared []string, provided map[string]any) []string {
	var missing []string
	for _, key := range declared {
		if _, ok := provided[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
