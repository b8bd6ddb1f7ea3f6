package component

import (
	"github.com/kpe/rasa-nlu/errors"
)

// MaxNameLength bounds component name length.
const MaxNameLength = 256

// ValidateName validates component names. Names are referenced from pipeline
// templates and cache keys, so only alphanumerics, dash, underscore and dot
// are allowed.
func ValidateName(name string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Component", "ValidateName", "empty name")
	}
	if len(name) > MaxNameLength {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Component", "ValidateName", "name too long")
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.') {
			return errors.WrapInvalid(
				errors.ErrInvalidConfig, "Component", "ValidateName", "invalid name characters")
		}
	}
	return nil
}
