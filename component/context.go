package component

import (
	"sort"

	"github.com/google/uuid"
)

// Context is the accumulating mapping threaded through one pipeline
// invocation for one lifecycle stage. It is seeded with the stage's base
// keys and grows monotonically as components execute in pipeline order: a
// key once added stays visible to every later component in the traversal.
// Contexts are never persisted and are discarded when the invocation ends.
//
// A Context belongs to a single synchronous traversal and is not safe for
// concurrent use.
type Context struct {
	id     string
	stage  Stage
	values map[string]any
}

// NewContext creates a context for one stage traversal, seeded with the
// stage's base keys bound to the given seed values. Base keys absent from
// seed are bound to nil so they remain resolvable.
func NewContext(stage Stage, seed map[string]any) *Context {
	ctx := &Context{
		id:     uuid.NewString(),
		stage:  stage,
		values: make(map[string]any),
	}
	for _, key := range stage.BaseKeys() {
		ctx.values[key] = seed[key]
	}
	for key, value := range seed {
		ctx.values[key] = value
	}
	return ctx
}

// ID returns the unique identifier of this pipeline invocation.
func (c *Context) ID() string {
	return c.id
}

// Stage returns the lifecycle stage this context belongs to.
func (c *Context) Stage() Stage {
	return c.stage
}

// Get returns the value bound to key.
func (c *Context) Get(key string) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

// Has reports whether key is present.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Set binds key to value. Keys accumulate for the lifetime of the
// traversal; later components see everything earlier components added.
func (c *Context) Set(key string, value any) {
	c.values[key] = value
}

// Fold adds every entry of values to the context. Used after a component's
// stage invocation to merge its provided context keys.
func (c *Context) Fold(values map[string]any) {
	for key, value := range values {
		c.values[key] = value
	}
}

// Len returns the number of keys currently in the context.
func (c *Context) Len() int {
	return len(c.values)
}

// Keys returns all context keys, sorted.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for key := range c.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
