package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpe/rasa-nlu/component"
	"github.com/kpe/rasa-nlu/errors"
)

func registryWith(t *testing.T, names ...string) *component.Registry {
	t.Helper()
	registry := component.NewRegistry()
	for _, name := range names {
		desc := component.Descriptor{Name: name}
		require.NoError(t, registry.Register(&component.Registration{
			Descriptor: desc,
			Factory:    component.BaseFactory(desc),
		}))
	}
	return registry
}

func TestCatalogRegisterAndLookup(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Register("keyword", []string{"intent_classifier_keyword"}))

	components, ok := catalog.Lookup("keyword")
	require.True(t, ok)
	assert.Equal(t, []string{"intent_classifier_keyword"}, components)

	_, ok = catalog.Lookup("absent")
	assert.False(t, ok)
}

func TestCatalogRegisterDuplicate(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Register("keyword", []string{"a"}))

	err := catalog.Register("keyword", []string{"b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidTemplate)
}

func TestCatalogRegisterEmptyName(t *testing.T) {
	assert.Error(t, NewCatalog().Register("", []string{"a"}))
}

func TestCatalogValidate(t *testing.T) {
	registry := registryWith(t, "tokenizer_whitespace", "intent_classifier_keyword")

	catalog := NewCatalog()
	require.NoError(t, catalog.Register("good", []string{"tokenizer_whitespace"}))
	assert.NoError(t, catalog.Validate(registry))

	require.NoError(t, catalog.Register("bad", []string{"tokenizer_whitespace", "phantom"}))
	err := catalog.Validate(registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phantom")
	assert.Contains(t, err.Error(), "bad")
}

func TestValidateExhaustive(t *testing.T) {
	registry := registryWith(t, "a", "b")

	catalog := NewCatalog()
	require.NoError(t, catalog.Register(AllComponentsTemplate, []string{"a", "b"}))
	assert.NoError(t, catalog.ValidateExhaustive(registry, AllComponentsTemplate))
}

func TestValidateExhaustiveMissingComponent(t *testing.T) {
	registry := registryWith(t, "a", "b")

	catalog := NewCatalog()
	require.NoError(t, catalog.Register(AllComponentsTemplate, []string{"a"}))

	err := catalog.ValidateExhaustive(registry, AllComponentsTemplate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing component 'b'")
}

func TestValidateExhaustiveDuplicateReference(t *testing.T) {
	registry := registryWith(t, "a")

	catalog := NewCatalog()
	require.NoError(t, catalog.Register(AllComponentsTemplate, []string{"a", "a"}))

	err := catalog.ValidateExhaustive(registry, AllComponentsTemplate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 times")
}

func TestValidateExhaustiveUnknownTemplate(t *testing.T) {
	registry := registryWith(t, "a")
	assert.Error(t, NewCatalog().ValidateExhaustive(registry, AllComponentsTemplate))
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yml")
	content := `keyword:
  - intent_classifier_keyword
tiny:
  - tokenizer_whitespace
  - intent_classifier_keyword
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"keyword", "tiny"}, catalog.Names())
	components, ok := catalog.Lookup("tiny")
	require.True(t, ok)
	assert.Equal(t, []string{"tokenizer_whitespace", "intent_classifier_keyword"}, components)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
