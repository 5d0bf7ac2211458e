// Package domain contains the core domain models of relock: dependencies, manifests,
// conflict records and the manifest reference graph.
package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ManifestGraph records which manifests textually reference which other manifests.
type ManifestGraph struct {
	references map[string][]string
}

// NewManifestGraph creates a graph from an adjacency map (manifest -> manifests it references).
// References are expected to be normalized to the input extension already.
func NewManifestGraph(references map[string][]string) *ManifestGraph {
	refs := make(map[string][]string, len(references))
	for name, targets := range references {
		refs[name] = slices.Clone(targets)
	}
	return &ManifestGraph{references: refs}
}

// References returns the manifests name references.
func (g *ManifestGraph) References(name string) []string {
	return g.references[name]
}

// Order returns names in an order where every manifest follows all the manifests it references,
// considering only references to manifests that are themselves in names.
//
// Each pass selects, in input order, every remaining manifest whose in-set references were all
// ordered by earlier passes. A pass that selects nothing means the restricted graph has a cycle.
func (g *ManifestGraph) Order(names []string) ([]string, error) {
	working := uniqueInOrder(names)
	inSet := make(map[string]bool, len(working))
	for _, n := range working {
		inSet[n] = true
	}

	ordered := make([]string, 0, len(working))
	done := make(map[string]bool, len(working))

	for len(ordered) < len(working) {
		var pass []string
		for _, name := range working {
			if done[name] {
				continue
			}
			if g.ready(name, inSet, done) {
				pass = append(pass, name)
			}
		}

		if len(pass) == 0 {
			return nil, g.buildCycleError(working, inSet, done)
		}

		for _, name := range pass {
			done[name] = true
		}
		ordered = append(ordered, pass...)
	}

	return ordered, nil
}

func (g *ManifestGraph) ready(name string, inSet, done map[string]bool) bool {
	for _, ref := range g.references[name] {
		if ref == name || !inSet[ref] {
			continue
		}
		if !done[ref] {
			return false
		}
	}
	return true
}

// buildCycleError finds a cycle among the manifests left unordered and reports its path.
func (g *ManifestGraph) buildCycleError(working []string, inSet, done map[string]bool) error {
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string
	var cycle []string

	var visit func(u string) bool
	visit = func(u string) bool {
		visited[u] = 1
		path = append(path, u)
		for _, ref := range g.references[u] {
			if ref == u || !inSet[ref] || done[ref] {
				continue
			}
			if visited[ref] == 1 {
				start := slices.Index(path, ref)
				cycle = append(slices.Clone(path[start:]), ref)
				return true
			}
			if visited[ref] == 0 && visit(ref) {
				return true
			}
		}
		visited[u] = 2
		path = path[:len(path)-1]
		return false
	}

	for _, name := range working {
		if done[name] || visited[name] != 0 {
			continue
		}
		if visit(name) {
			break
		}
	}

	return zerr.With(ErrCircularManifestReference, "cycle", strings.Join(cycle, " -> "))
}

// OrderManifests is a convenience wrapper around NewManifestGraph(references).Order(names).
func OrderManifests(names []string, references map[string][]string) ([]string, error) {
	return NewManifestGraph(references).Order(names)
}

func uniqueInOrder(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
