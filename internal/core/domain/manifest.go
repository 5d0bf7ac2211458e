package domain

import (
	"path"
	"strings"
)

// ManifestRole discriminates how a manifest file takes part in a resolution attempt.
type ManifestRole int

const (
	// RoleInput is an editable input spec (e.g. "requirements.in").
	RoleInput ManifestRole = iota
	// RoleCompiled is a lock output produced by the resolver (e.g. "requirements.txt").
	RoleCompiled
	// RoleBuildConfig is an auxiliary build configuration (setup.py, setup.cfg).
	RoleBuildConfig
	// RoleRuntimePin is a runtime pin file (.python-version).
	RoleRuntimePin
	// RoleRuntimeDeclaration declares runtime constraints without pinning (runtime.txt, pyproject.toml, Pipfile).
	RoleRuntimeDeclaration
)

// String returns a human readable role name.
func (r ManifestRole) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleCompiled:
		return "compiled"
	case RoleBuildConfig:
		return "build-config"
	case RoleRuntimePin:
		return "runtime-pin"
	case RoleRuntimeDeclaration:
		return "runtime-declaration"
	default:
		return "unknown"
	}
}

// ManifestFile is a dependency manifest with its content.
// The content of a ManifestFile is never rewritten in place; attempts write modified copies into a workspace.
type ManifestFile struct {
	// Name is the path of the file relative to the project directory, using forward slashes.
	Name string

	// Content is the textual content of the file.
	Content string

	// Role is how the file participates in resolution.
	Role ManifestRole
}

// RoleForFilename infers the role of a manifest from its file name.
func RoleForFilename(name string) ManifestRole {
	base := path.Base(name)
	switch {
	case strings.HasSuffix(base, InputExt):
		return RoleInput
	case base == RuntimePinFileName:
		return RoleRuntimePin
	case base == "setup.py" || base == "setup.cfg":
		return RoleBuildConfig
	case base == "runtime.txt" || base == "pyproject.toml" || base == "Pipfile":
		return RoleRuntimeDeclaration
	default:
		return RoleCompiled
	}
}

// FilesWithRole returns the files in files with role r, preserving order.
func FilesWithRole(files []ManifestFile, r ManifestRole) []ManifestFile {
	var out []ManifestFile
	for _, f := range files {
		if f.Role == r {
			out = append(out, f)
		}
	}
	return out
}

// CompiledName returns the conventional compiled output name for an input manifest ("a.in" -> "a.txt").
func CompiledName(input string) string {
	return strings.TrimSuffix(input, InputExt) + CompiledExt
}

// InputName returns the conventional input name for a compiled manifest ("a.txt" -> "a.in").
func InputName(compiled string) string {
	return strings.TrimSuffix(compiled, CompiledExt) + InputExt
}
