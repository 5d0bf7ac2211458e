package domain

import "slices"

// UnlockSet is the ordered, duplicate-free set of dependencies loosened to "any version >= locked".
// It only grows. The primary target and the runtime pseudo-dependency are never members.
type UnlockSet struct {
	target Name
	names  []Name
	index  map[Name]struct{}
}

// NewUnlockSet creates an empty set for an update of target.
func NewUnlockSet(target Name) *UnlockSet {
	return &UnlockSet{
		target: target,
		index:  make(map[Name]struct{}),
	}
}

// Add appends the names not already present. It returns the names actually added, in order.
func (s *UnlockSet) Add(names ...Name) []Name {
	var added []Name
	for _, n := range names {
		if !s.accepts(n) {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
		added = append(added, n)
	}
	return added
}

func (s *UnlockSet) accepts(n Name) bool {
	if n.IsZero() || n == s.target || n == RuntimeDependencyName {
		return false
	}
	_, exists := s.index[n]
	return !exists
}

// Contains reports whether n is in the set.
func (s *UnlockSet) Contains(n Name) bool {
	_, ok := s.index[n]
	return ok
}

// Names returns the members in discovery order.
func (s *UnlockSet) Names() []Name {
	return slices.Clone(s.names)
}

// Len returns the number of members.
func (s *UnlockSet) Len() int {
	return len(s.names)
}

// Target returns the dependency whose update the set serves.
func (s *UnlockSet) Target() Name {
	return s.target
}
