// Package config provides the static pipeline configuration mapping.
//
// Configuration is loaded once per pipeline build and is read-only during
// execution. It supplies values that no component produces at runtime, such
// as user-tunable hyperparameters. It is distinct from the pipeline context,
// which accumulates values while a pipeline runs.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kpe/rasa-nlu/errors"
)

// Security limits for configuration values
const (
	MaxStringLength = 1024          // Maximum length for string values
	MaxInt          = math.MaxInt32 // Maximum safe integer value
	MinInt          = math.MinInt32 // Minimum safe integer value
)

// Config is a static mapping from configuration key to value.
// It never changes during a pipeline run.
type Config map[string]any

// Load reads a YAML configuration document from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Load", "read file")
	}
	return Parse(data)
}

// Parse decodes a YAML configuration document.
func Parse(data []byte) (Config, error) {
	cfg := make(Config)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Parse", "yaml decode")
	}
	return cfg, nil
}

// Has reports whether key is present.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Get returns the raw value for key.
func (c Config) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// Project returns the sub-mapping of c restricted to keys. Absent keys are
// omitted rather than defaulted, so two configurations that agree on the
// projected keys produce identical projections.
func (c Config) Project(keys []string) Config {
	projected := make(Config, len(keys))
	for _, key := range keys {
		if v, ok := c[key]; ok {
			projected[key] = v
		}
	}
	return projected
}

// CanonicalString returns a deterministic rendering of the configuration
// used for deriving cache keys: a JSON object with keys in sorted order.
// JSON quoting keeps the rendering unambiguous, so two configurations
// produce the same string only when they agree on every key and value.
// Values that cannot be marshalled fall back to their quoted fmt rendering
// so the result stays deterministic.
func (c Config) CanonicalString() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		keyJSON, _ := json.Marshal(k)
		sb.Write(keyJSON)
		sb.WriteByte(':')
		valueJSON, err := json.Marshal(c[k])
		if err != nil {
			valueJSON, _ = json.Marshal(fmt.Sprintf("%v", c[k]))
		}
		sb.Write(valueJSON)
	}
	sb.WriteByte('}')
	return sb.String()
}

// ValidateKey checks if a configuration key is valid
func ValidateKey(key string) error {
	if key == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "ValidateKey", "empty key")
	}
	if len(key) > MaxStringLength {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "ValidateKey", "key too long")
	}
	// Check for potentially dangerous characters
	if strings.ContainsAny(key, "\x00\n\r\t") {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "ValidateKey", "invalid key characters")
	}
	return nil
}

// GetString safely extracts a string value with a default fallback and validation
func (c Config) GetString(key string, defaultValue string) string {
	if err := ValidateKey(key); err != nil {
		return defaultValue
	}

	if value, exists := c[key]; exists {
		if str, ok := value.(string); ok {
			if len(str) > MaxStringLength {
				return defaultValue
			}
			// Sanitize string - remove null bytes and control characters except basic whitespace
			cleaned := strings.Map(func(r rune) rune {
				if r == '\x00' || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
					return -1
				}
				return r
			}, str)
			return cleaned
		}
	}
	return defaultValue
}

// GetInt safely extracts an integer value with a default fallback and bounds checking
func (c Config) GetInt(key string, defaultValue int) int {
	if err := ValidateKey(key); err != nil {
		return defaultValue
	}

	if value, exists := c[key]; exists {
		switch v := value.(type) {
		case int:
			if v < MinInt || v > MaxInt {
				return defaultValue
			}
			return v
		case int64:
			if v < int64(MinInt) || v > int64(MaxInt) {
				return defaultValue
			}
			return int(v)
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return defaultValue
			}
			if v < float64(MinInt) || v > float64(MaxInt) {
				return defaultValue
			}
			result := int(v)
			if float64(result) != v {
				return defaultValue
			}
			return result
		}
	}
	return defaultValue
}

// GetBool safely extracts a boolean value with a default fallback
func (c Config) GetBool(key string, defaultValue bool) bool {
	if err := ValidateKey(key); err != nil {
		return defaultValue
	}

	if value, exists := c[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return defaultValue
}

// GetFloat64 safely extracts a float64 value with a default fallback and validation
func (c Config) GetFloat64(key string, defaultValue float64) float64 {
	if err := ValidateKey(key); err != nil {
		return defaultValue
	}

	if value, exists := c[key]; exists {
		switch v := value.(type) {
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return defaultValue
			}
			return v
		case float32:
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				return defaultValue
			}
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return defaultValue
}

// GetStringSlice safely extracts a string slice. YAML sequences decode as
// []any, so both []string and []any element-wise are accepted.
func (c Config) GetStringSlice(key string) []string {
	if err := ValidateKey(key); err != nil {
		return nil
	}

	value, exists := c[key]
	if !exists {
		return nil
	}

	switch v := value.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// Clone returns a shallow copy of the configuration.
func (c Config) Clone() Config {
	copied := make(Config, len(c))
	for k, v := range c {
		copied[k] = v
	}
	return copied
}
