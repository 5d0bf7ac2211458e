package domain

import (
	"maps"
	"slices"
)

// GemRequirement is a top-level declaration in a Gemfile.
type GemRequirement struct {
	Name        Name
	Requirement string
}

// LockedSpec is an entry of a lockfile's specs section.
type LockedSpec struct {
	Name         Name
	Version      string
	Dependencies []GemRequirement
}

// Definition is the input to a graph resolver: the manifest pair, which gems to unlock,
// and any requirement overrides. A Definition is a value; overriding returns a new one.
type Definition struct {
	Gemfile      ManifestFile
	Lockfile     *ManifestFile
	Unlock       []Name
	Requirements map[Name]string
}

// NewDefinition creates a definition without overrides.
func NewDefinition(gemfile ManifestFile, lockfile *ManifestFile, unlock []Name) Definition {
	return Definition{
		Gemfile:      gemfile,
		Lockfile:     lockfile,
		Unlock:       slices.Clone(unlock),
		Requirements: map[Name]string{},
	}
}

// WithRequirement returns a copy of d with the requirement of name replaced.
func (d Definition) WithRequirement(name Name, requirement string) Definition {
	next := d
	next.Unlock = slices.Clone(d.Unlock)
	next.Requirements = maps.Clone(d.Requirements)
	if next.Requirements == nil {
		next.Requirements = map[Name]string{}
	}
	next.Requirements[name] = requirement
	return next
}
