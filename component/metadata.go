package component

// Metadata is the persisted model metadata produced by an earlier training
// run. The runtime treats it as opaque beyond named lookups; loaders read
// whatever entries their component persisted.
type Metadata struct {
	entries map[string]any
}

// NewMetadata creates metadata from the given entries.
func NewMetadata(entries map[string]any) Metadata {
	if entries == nil {
		entries = make(map[string]any)
	}
	return Metadata{entries: entries}
}

// Get returns the metadata value for name.
func (m Metadata) Get(name string) (any, bool) {
	value, ok := m.entries[name]
	return value, ok
}

// GetString returns the string metadata value for name, or defaultValue.
func (m Metadata) GetString(name, defaultValue string) string {
	if value, ok := m.entries[name]; ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return defaultValue
}

// Len returns the number of metadata entries.
func (m Metadata) Len() int {
	return len(m.entries)
}
