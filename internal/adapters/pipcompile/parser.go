package pipcompile

import (
	"slices"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

var _ ports.ManifestParser = (*Parser)(nil)

// Parser reads declarations from input manifests and pins from compiled manifests.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the dependencies of files sorted by name.
// Dependencies declared in an input manifest are top-level; the rest were pulled in by compilation.
func (p *Parser) Parse(files []domain.ManifestFile) ([]domain.Dependency, error) {
	deps := make(map[domain.Name]*domain.Dependency)
	get := func(n domain.Name) *domain.Dependency {
		d, ok := deps[n]
		if !ok {
			d = &domain.Dependency{Name: n}
			deps[n] = d
		}
		return d
	}

	for _, f := range domain.FilesWithRole(files, domain.RoleInput) {
		for _, line := range lines(f.Content) {
			decl, ok := parseLine(line)
			if !ok {
				continue
			}
			d := get(decl.name)
			d.TopLevel = true
			d.Requirements = append(d.Requirements, domain.Requirement{File: f.Name, Requirement: decl.spec})
		}
	}

	for _, f := range domain.FilesWithRole(files, domain.RoleCompiled) {
		for _, line := range lines(f.Content) {
			decl, ok := parseLine(line)
			if !ok {
				continue
			}
			version, pinned := pinnedVersion(decl.spec)
			if !pinned {
				continue
			}
			if d := get(decl.name); d.Version == "" {
				d.Version = version
			}
		}
	}

	out := make([]domain.Dependency, 0, len(deps))
	for _, d := range deps {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b domain.Dependency) int { return strings.Compare(a.Name.String(), b.Name.String()) })
	return out, nil
}

// Contains reports whether content declares name.
func Contains(content string, name domain.Name) bool {
	for _, line := range lines(content) {
		if decl, ok := parseLine(line); ok && decl.name == name {
			return true
		}
	}
	return false
}

// VersionOf returns the version pinned for name in compiled content.
func VersionOf(content string, name domain.Name) (string, bool) {
	for _, line := range lines(content) {
		decl, ok := parseLine(line)
		if !ok || decl.name != name {
			continue
		}
		if v, pinned := pinnedVersion(decl.spec); pinned {
			return v, true
		}
	}
	return "", false
}
