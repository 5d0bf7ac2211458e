package domain

import (
	"sort"
	"strings"
)

// RequirementNode is one link of a requirement lineage.
type RequirementNode struct {
	Name        Name
	Requirement string
}

// RequirementTree is the lineage of requirements that produced a conflict, ordered from the
// dependency being unlocked down to the one that is actually pinned.
type RequirementTree []RequirementNode

// First returns the least specific link of the tree.
func (t RequirementTree) First() RequirementNode {
	if len(t) == 0 {
		return RequirementNode{}
	}
	return t[0]
}

// Last returns the most specific link of the tree.
func (t RequirementTree) Last() RequirementNode {
	if len(t) == 0 {
		return RequirementNode{}
	}
	return t[len(t)-1]
}

// Conflict is a single conflicting requirement and the trees that led to it.
type Conflict struct {
	Name  Name
	Trees []RequirementTree
}

// Touches reports whether any tree starts or ends at one of names.
func (c Conflict) Touches(names map[Name]struct{}) bool {
	for _, t := range c.Trees {
		if _, ok := names[t.First().Name]; ok {
			return true
		}
		if _, ok := names[t.Last().Name]; ok {
			return true
		}
	}
	return false
}

// VersionConflictError is returned by a definition resolver when no set of versions satisfies all requirements.
type VersionConflictError struct {
	Message   string
	Conflicts map[Name]Conflict
}

// Error returns the resolver's message.
func (e *VersionConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	names := make([]string, 0, len(e.Conflicts))
	for n := range e.Conflicts {
		names = append(names, n.String())
	}
	sort.Strings(names)
	return "version conflict on " + strings.Join(names, ", ")
}

// SortedConflicts returns the conflicts ordered by name so that candidate discovery is deterministic.
func (e *VersionConflictError) SortedConflicts() []Conflict {
	out := make([]Conflict, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name.String() < out[j].Name.String() })
	return out
}
