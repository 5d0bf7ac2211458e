package domain

// Requirement is one declaration of a dependency in a manifest file.
type Requirement struct {
	// File is the manifest the requirement was declared in (e.g. "requirements/base.in").
	File string

	// Requirement is the constraint as written (e.g. "==2.3.0", ">=1.0,<2"). Empty means unconstrained.
	Requirement string
}

// Dependency is the immutable input to a resolution attempt.
type Dependency struct {
	// Name is the normalized dependency name.
	Name Name

	// Version is the currently locked version, if any.
	Version string

	// Requirements are the declarations of the dependency across manifests.
	Requirements []Requirement

	// TopLevel is true when the dependency is declared directly rather than pulled in transitively.
	TopLevel bool
}

// RequirementIn returns the requirement declared in file, if any.
func (d *Dependency) RequirementIn(file string) (Requirement, bool) {
	for _, r := range d.Requirements {
		if r.File == file {
			return r, true
		}
	}
	return Requirement{}, false
}

// ResolvedSpec is a name and version selected by a successful resolution.
type ResolvedSpec struct {
	Name    Name
	Version string
}

// UpdatedDependency describes a dependency whose locked version changes as part of an update.
type UpdatedDependency struct {
	Name            Name
	Version         string
	PreviousVersion string
}
