package depcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticResolver(t *testing.T) {
	resolver := NewStaticResolver("io", "spacy")

	assert.True(t, resolver.Resolves("io"))
	assert.True(t, resolver.Resolves("spacy"))
	assert.False(t, resolver.Resolves("made_up_pkg_x"))
}

func TestUnavailable(t *testing.T) {
	resolver := NewStaticResolver("io")

	unavailable := Unavailable(resolver, []string{"io", "made_up_pkg_x", "made_up_pkg_x"})
	assert.Equal(t, []string{"made_up_pkg_x"}, unavailable)
}

func TestUnavailableDeduplicatesAndSorts(t *testing.T) {
	resolver := NewStaticResolver()

	unavailable := Unavailable(resolver, []string{"zeta", "alpha", "zeta", "alpha"})
	assert.Equal(t, []string{"alpha", "zeta"}, unavailable)
}

func TestUnavailableAllResolvable(t *testing.T) {
	resolver := NewStaticResolver("a", "b")

	assert.Empty(t, Unavailable(resolver, []string{"a", "b"}))
	assert.Empty(t, Unavailable(resolver, nil))
}

func TestUnavailableProbesEachNameOnce(t *testing.T) {
	probes := make(map[string]int)
	resolver := resolverFunc(func(name string) bool {
		probes[name]++
		return false
	})

	Unavailable(resolver, []string{"x", "x", "y", "x"})
	assert.Equal(t, 1, probes["x"])
	assert.Equal(t, 1, probes["y"])
}

type resolverFunc func(string) bool

func (f resolverFunc) Resolves(name string) bool { return f(name) }

func TestPackageResolverStdlib(t *testing.T) {
	resolver := NewPackageResolver()

	assert.True(t, resolver.Resolves("io"))
	assert.False(t, resolver.Resolves("made_up_pkg_x"))

	// Cached probe returns the same answer.
	assert.True(t, resolver.Resolves("io"))
}

func TestEnrich(t *testing.T) {
	manifest := map[string][]string{
		"spacy": {"spacy", "spacy-model-en"},
	}

	installable := Enrich([]string{"spacy", "mitie"}, manifest)
	assert.Equal(t, map[string][]string{"spacy": {"spacy", "spacy-model-en"}}, installable)

	assert.Nil(t, Enrich([]string{"spacy"}, nil))
}
