package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpe/rasa-nlu/errors"
)

func testDescriptor(name string) Descriptor {
	return Descriptor{
		Name: name,
		Provides: map[Stage][]string{
			StageProcess: {"tokens"},
		},
		Requires: map[Stage][]string{
			StageProcess: {"text"},
		},
	}
}

func testRegistration(name string) *Registration {
	desc := testDescriptor(name)
	return &Registration{
		Descriptor: desc,
		Factory:    BaseFactory(desc),
		Loader:     BaseLoader(desc),
	}
}

func TestRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(testRegistration("tokenizer_whitespace")))

	registration, ok := registry.Lookup("tokenizer_whitespace")
	require.True(t, ok)
	assert.Equal(t, "tokenizer_whitespace", registration.Descriptor.Name)

	_, ok = registry.Lookup("absent")
	assert.False(t, ok)
}

func TestRegisterDuplicateName(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(testRegistration("tokenizer_whitespace")))

	err := registry.Register(testRegistration("tokenizer_whitespace"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateName)
	assert.True(t, errors.IsFatal(err))
}

func TestRegisterValidation(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name         string
		registration *Registration
	}{
		{"nil registration", nil},
		{"empty name", &Registration{Descriptor: Descriptor{}, Factory: BaseFactory(Descriptor{})}},
		{"invalid name characters", testRegistration("bad name!")},
		{"nil factory", &Registration{Descriptor: testDescriptor("ok_name")}},
		{
			"unknown provides stage",
			&Registration{
				Descriptor: Descriptor{
					Name:     "odd",
					Provides: map[Stage][]string{Stage("bogus"): {"x"}},
				},
				Factory: BaseFactory(Descriptor{Name: "odd"}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, registry.Register(tt.registration))
		})
	}
	assert.Equal(t, 0, registry.Size())
}

func TestNoComponentsWithSameName(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(testRegistration("ner_crf")))
	require.NoError(t, registry.Register(testRegistration("ner_spacy")))

	names := registry.Names()
	seen := make(map[string]int)
	for _, name := range names {
		seen[name]++
	}
	for name, count := range seen {
		assert.Equalf(t, 1, count, "component '%s' registered more than once", name)
	}
}

func TestAllSortedByName(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(testRegistration("zeta")))
	require.NoError(t, registry.Register(testRegistration("alpha")))

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Descriptor.Name)
	assert.Equal(t, "zeta", all[1].Descriptor.Name)
	assert.Equal(t, []string{"alpha", "zeta"}, registry.Names())
}

func TestClosest(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(testRegistration("tokenizer_whitespace")))
	require.NoError(t, registry.Register(testRegistration("tokenizer_spacy")))
	require.NoError(t, registry.Register(testRegistration("ner_crf")))

	closest := registry.Closest("tokenizer_whitspace", 2)
	require.NotEmpty(t, closest)
	assert.Equal(t, "tokenizer_whitespace", closest[0])

	// A name nothing like any registered name yields no suggestions.
	assert.Empty(t, registry.Closest("x", 2))
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"ner_crf", "ner_spacy", 4},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, editDistance(tt.a, tt.b), "editDistance(%q, %q)", tt.a, tt.b)
	}
}
