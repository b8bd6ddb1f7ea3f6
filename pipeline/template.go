// Package pipeline provides the pipeline-template catalog, the live stage
// runner that threads the accumulating context through components in
// declared order, and the build-time satisfiability check over the
// registry.
package pipeline

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kpe/rasa-nlu/component"
	"github.com/kpe/rasa-nlu/errors"
)

// AllComponentsTemplate names the exhaustive template that must reference
// every registered component exactly once. It exists to exercise the full
// train-persist-load cycle in validation tooling.
const AllComponentsTemplate = "all_components"

// Catalog maps template names to ordered lists of component names.
type Catalog struct {
	templates map[string][]string
}

// NewCatalog creates an empty template catalog.
func NewCatalog() *Catalog {
	return &Catalog{templates: make(map[string][]string)}
}

// LoadCatalog reads a YAML document mapping template names to component
// name lists.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Catalog", "LoadCatalog", "read file")
	}

	templates := make(map[string][]string)
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, errors.WrapInvalid(err, "Catalog", "LoadCatalog", "yaml decode")
	}
	return &Catalog{templates: templates}, nil
}

// Register adds a template. Duplicate template names are rejected.
func (c *Catalog) Register(name string, components []string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidTemplate, "Catalog", "Register", "template name validation")
	}
	if _, exists := c.templates[name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("%w: template '%s' already registered", errors.ErrInvalidTemplate, name),
			"Catalog", "Register", "duplicate template check")
	}
	c.templates[name] = components
	return nil
}

// Lookup returns the ordered component names of a template.
func (c *Catalog) Lookup(name string) ([]string, bool) {
	components, ok := c.templates[name]
	return components, ok
}

// Names returns all template names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every component name referenced by any template
// resolves in the registry. A template is valid iff all its names resolve.
func (c *Catalog) Validate(registry *component.Registry) error {
	var errs []error
	for _, template := range c.Names() {
		for _, name := range c.templates[template] {
			if _, ok := registry.Lookup(name); !ok {
				errs = append(errs, fmt.Errorf(
					"%w: template '%s' references unknown component '%s'",
					errors.ErrInvalidTemplate, template, name))
			}
		}
	}
	return joinErrors(errs)
}

// ValidateExhaustive checks that the named template references every
// registered component exactly once. Used for the all_components template.
func (c *Catalog) ValidateExhaustive(registry *component.Registry, templateName string) error {
	components, ok := c.Lookup(templateName)
	if !ok {
		return errors.WrapInvalid(
			fmt.Errorf("%w: template '%s' not registered", errors.ErrInvalidTemplate, templateName),
			"Catalog", "ValidateExhaustive", "template lookup")
	}

	counts := make(map[string]int, len(components))
	for _, name := range components {
		counts[name]++
	}

	var errs []error
	for _, name := range registry.Names() {
		switch counts[name] {
		case 0:
			errs = append(errs, fmt.Errorf(
				"%w: template '%s' is missing component '%s'",
				errors.ErrInvalidTemplate, templateName, name))
		case 1:
			// Exactly once, as required.
		default:
			errs = append(errs, fmt.Errorf(
				"%w: template '%s' references component '%s' %d times",
				errors.ErrInvalidTemplate, templateName, name, counts[name]))
		}
		delete(counts, name)
	}
	for name := range counts {
		errs = append(errs, fmt.Errorf(
			"%w: template '%s' references unknown component '%s'",
			errors.ErrInvalidTemplate, templateName, name))
	}
	return joinErrors(errs)
}
