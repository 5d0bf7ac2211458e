package ports

import "go.trai.ch/relock/internal/core/domain"

// ManifestParser turns manifest files into dependencies with their resolved versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestParser interface {
	// Parse returns every dependency declared or locked in files.
	Parse(files []domain.ManifestFile) ([]domain.Dependency, error)
}

// RequirementReplacer rewrites a dependency's requirement inside manifest content.
type RequirementReplacer interface {
	// Replace returns content with the declaration of name changed from oldRequirement to newRequirement.
	Replace(content string, name domain.Name, oldRequirement, newRequirement string) (string, error)
}

// ReferenceParser discovers relations between manifests.
type ReferenceParser interface {
	// References maps each input manifest to the input manifests it references.
	References(files []domain.ManifestFile) map[string][]string

	// CompiledFileFor returns the compiled output belonging to the input manifest.
	CompiledFileFor(files []domain.ManifestFile, input string) (domain.ManifestFile, bool)
}

// RuntimeRequirementParser extracts runtime version constraints from manifests.
type RuntimeRequirementParser interface {
	// UserSpecified returns constraints the user declared explicitly (pin files, runtime declarations).
	UserSpecified(files []domain.ManifestFile) []string

	// Imputed returns constraints implied by markers embedded in compiled manifests.
	Imputed(files []domain.ManifestFile) []string
}

// BuildConfigSanitizer replaces build configuration files with inert stand-ins.
type BuildConfigSanitizer interface {
	// Sanitize returns content that declares the same package without executing project code.
	Sanitize(file domain.ManifestFile) string
}
