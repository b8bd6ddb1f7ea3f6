// Package rasanlu provides a declarative component pipeline runtime for
// natural language understanding backends.
//
// # Philosophy: Descriptors Over Reflection
//
// Every processing unit is described by a static Descriptor: a unique name,
// the context keys it provides per lifecycle stage, the parameter names its
// stage methods require, the external packages it depends on, and the
// configuration keys relevant to instance caching. The descriptor table is
// the contract. Nothing is derived from method signatures and nothing is
// registered through import side effects: hosts install the catalog
// explicitly at startup and validate it before any pipeline runs.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│       componentregistry             │  Built-in descriptor catalog,
//	│   (explicit startup registration)   │  pipeline templates
//	└─────────────────────────────────────┘
//	           ↓ installs into
//	┌─────────────────────────────────────┐
//	│       component.Registry            │  Unique-name registration,
//	│   (descriptors, factories, loaders) │  closest-name suggestions
//	└─────────────────────────────────────┘
//	           ↓ resolved by
//	┌─────────────────────────────────────┐
//	│          builder.Builder            │  Dependency checking, config-aware
//	│  (create, load, cache, singleflight)│  instance caching
//	└─────────────────────────────────────┘
//	           ↓ assembled into
//	┌─────────────────────────────────────┐
//	│         pipeline.Pipeline           │  Ordered stage traversal over a
//	│   (init, train, process, persist)   │  shared accumulating Context
//	└─────────────────────────────────────┘
//
// # Lifecycle
//
// A pipeline invocation runs one stage across its components in declared
// order. The Context is seeded with the stage's base keys (training_data
// for train, text for process), each component's arguments are resolved
// from the context and the static configuration with the context taking
// precedence, and the component's declared provides are folded back into
// the context. A component that fails to deliver a declared key fails the
// traversal with a ContractViolationError.
//
// Two validation layers keep pipelines honest:
//
//   - pipeline.CheckSatisfiability proves at build time that every
//     registered component's requires can be met in principle for a stage.
//   - pipeline.RunStage enforces the concrete ordering at run time and
//     fails with a MissingArgumentError naming exactly the unsatisfiable
//     parameters.
//
// # Quick Start
//
//	registry := component.NewRegistry()
//	if err := componentregistry.Register(registry); err != nil {
//		log.Fatal(err)
//	}
//
//	deps := component.Dependencies{Logger: slog.Default()}
//	b, err := builder.New(registry, deps)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := config.Config{"language": "en"}
//	p, err := pipeline.Assemble(
//		[]string{"tokenizer_whitespace", "intent_classifier_keyword"},
//		cfg, b, deps)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, err := p.Process("hello there")
package rasanlu
