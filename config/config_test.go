package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("language: en\nmax_iterations: 50\nfine_tune: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.GetString("language", ""))
	assert.Equal(t, 50, cfg.GetInt("max_iterations", 0))
	assert.True(t, cfg.GetBool("fine_tune", false))
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("language: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("language: de\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.GetString("language", ""))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	assert.Error(t, err)
}

func TestProject(t *testing.T) {
	cfg := Config{"a": 1, "b": 2, "c": 3}

	projected := cfg.Project([]string{"a", "c", "missing"})
	assert.Equal(t, Config{"a": 1, "c": 3}, projected)

	// Absent keys are omitted, so configs agreeing on projected keys
	// project identically.
	other := Config{"a": 1, "c": 3, "unrelated": 99}
	assert.Equal(t, projected, other.Project([]string{"a", "c", "missing"}))
}

func TestCanonicalString(t *testing.T) {
	a := Config{"x": 1, "y": "two"}
	b := Config{"y": "two", "x": 1}

	assert.Equal(t, a.CanonicalString(), b.CanonicalString())
	assert.Equal(t, `{"x":1,"y":"two"}`, a.CanonicalString())
	assert.Equal(t, "{}", Config{}.CanonicalString())
}

func TestCanonicalStringUnambiguous(t *testing.T) {
	// A string value embedding the rendering's own separators must not
	// collide with a configuration that spells them out as distinct keys.
	tricky := Config{"a": "1,b=2"}
	plain := Config{"a": 1, "b": 2}
	assert.NotEqual(t, tricky.CanonicalString(), plain.CanonicalString())

	quoted := Config{"a": "1"}
	numeric := Config{"a": 1}
	assert.NotEqual(t, quoted.CanonicalString(), numeric.CanonicalString())
}

func TestGetStringValidation(t *testing.T) {
	cfg := Config{"name": "value", "number": 42}

	assert.Equal(t, "value", cfg.GetString("name", "default"))
	assert.Equal(t, "default", cfg.GetString("number", "default"))
	assert.Equal(t, "default", cfg.GetString("missing", "default"))
	assert.Equal(t, "default", cfg.GetString("", "default"))
}

func TestGetIntConversions(t *testing.T) {
	cfg := Config{
		"int":      10,
		"float":    float64(20),
		"bad":      float64(1.5),
		"overflow": int64(MaxInt) + 1,
	}

	assert.Equal(t, 10, cfg.GetInt("int", 0))
	assert.Equal(t, 20, cfg.GetInt("float", 0))
	assert.Equal(t, 0, cfg.GetInt("bad", 0))
	assert.Equal(t, 0, cfg.GetInt("overflow", 0))
	assert.Equal(t, 7, cfg.GetInt("missing", 7))
}

func TestGetStringSlice(t *testing.T) {
	cfg := Config{
		"typed":   []string{"a", "b"},
		"decoded": []any{"c", "d", 5},
	}

	assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("typed"))
	assert.Equal(t, []string{"c", "d"}, cfg.GetStringSlice("decoded"))
	assert.Nil(t, cfg.GetStringSlice("missing"))
}

func TestClone(t *testing.T) {
	cfg := Config{"a": 1}
	clone := cfg.Clone()
	clone["a"] = 2

	assert.Equal(t, 1, cfg["a"])
}
