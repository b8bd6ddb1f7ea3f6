// Package depcheck verifies that external package requirements declared by
// components are available in the current environment, and parses the
// supplementary requirements manifest used to build remediation messages.
package depcheck

import (
	"go/build"
	"sort"
	"sync"
)

// Resolver reports whether a named package resolves in the current
// environment. Implementations must treat a failed resolution as an expected
// outcome, never as an error.
type Resolver interface {
	Resolves(name string) bool
}

// PackageResolver probes package availability through the Go build context.
// Probe results are cached for the process lifetime since availability does
// not change while a pipeline runs.
type PackageResolver struct {
	mu    sync.RWMutex
	known map[string]bool
}

// NewPackageResolver creates a resolver backed by the default build context.
func NewPackageResolver() *PackageResolver {
	return &PackageResolver{known: make(map[string]bool)}
}

// Resolves reports whether the named package can be imported.
func (r *PackageResolver) Resolves(name string) bool {
	r.mu.RLock()
	resolved, cached := r.known[name]
	r.mu.RUnlock()
	if cached {
		return resolved
	}

	_, err := build.Default.Import(name, "", build.FindOnly)
	resolved = err == nil

	r.mu.Lock()
	r.known[name] = resolved
	r.mu.Unlock()

	return resolved
}

// StaticResolver resolves exactly the names it was constructed with.
// It is the deterministic stand-in for environment probing in tests and in
// deployments that declare their available packages up front.
type StaticResolver struct {
	available map[string]struct{}
}

// NewStaticResolver creates a resolver that resolves only the given names.
func NewStaticResolver(names ...string) *StaticResolver {
	available := make(map[string]struct{}, len(names))
	for _, name := range names {
		available[name] = struct{}{}
	}
	return &StaticResolver{available: available}
}

// Resolves reports whether name was declared available.
func (r *StaticResolver) Resolves(name string) bool {
	_, ok := r.available[name]
	return ok
}

// Unavailable returns the subset of names that do not resolve, deduplicated
// and sorted. Duplicate input names are collapsed before probing so each
// distinct name is resolved at most once.
func Unavailable(r Resolver, names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var missing []string
	for _, name := range names {
		if _, done := seen[name]; done {
			continue
		}
		seen[name] = struct{}{}
		if !r.Resolves(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Enrich maps each missing package to its installable package names from a
// parsed requirements manifest. Packages absent from the manifest are
// omitted from the result.
func Enrich(missing []string, manifest map[string][]string) map[string][]string {
	if len(manifest) == 0 {
		return nil
	}
	installable := make(map[string][]string)
	for _, pkg := range missing {
		if installs, ok := manifest[pkg]; ok {
			installable[pkg] = installs
		}
	}
	return installable
}
