package component

import (
	"github.com/kpe/rasa-nlu/config"
	"github.com/kpe/rasa-nlu/errors"
)

// FillArgs resolves the declared parameter names of a lifecycle method
// against the pipeline context and the static configuration. The context
// takes precedence: a name present in both is bound to the context value.
//
// The returned slice holds one value per required name, in declaration
// order, suitable for positional invocation. If any name resolves in
// neither mapping, FillArgs fails with a MissingArgumentError enumerating
// exactly the unsatisfiable names. The function is pure: identical inputs
// always produce identical outputs or identical failures.
func FillArgs(required []string, ctx *Context, cfg config.Config) ([]any, error) {
	filled := make([]any, 0, len(required))
	var missing []string

	for _, name := range required {
		if ctx != nil {
			if value, ok := ctx.Get(name); ok {
				filled = append(filled, value)
				continue
			}
		}
		if value, ok := cfg.Get(name); ok {
			filled = append(filled, value)
			continue
		}
		missing = append(missing, name)
	}

	if len(missing) > 0 {
		return nil, &errors.MissingArgumentError{Names: missing}
	}
	return filled, nil
}
