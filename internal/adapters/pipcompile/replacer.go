package pipcompile

import (
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RequirementReplacer = (*Replacer)(nil)

// Replacer rewrites the specifier of a declaration, keeping extras, markers and comments.
type Replacer struct{}

// NewReplacer creates a new Replacer.
func NewReplacer() *Replacer {
	return &Replacer{}
}

// Replace changes every declaration of name whose specifier equals oldRequirement.
func (r *Replacer) Replace(content string, name domain.Name, oldRequirement, newRequirement string) (string, error) {
	old := normalizeSpec(oldRequirement)
	ls := lines(content)
	replaced := false

	for i, line := range ls {
		if skipLine(line) {
			continue
		}
		m := requirementLine.FindStringSubmatch(line)
		if m == nil || domain.NewName(m[nameIdx]) != name || normalizeSpec(m[specIdx]) != old {
			continue
		}

		var b strings.Builder
		b.WriteString(m[headIdx])
		b.WriteString(newRequirement)
		if tail := m[tailIdx]; tail != "" {
			gap := m[gapIdx]
			if gap == "" {
				gap = " "
			}
			b.WriteString(gap)
			b.WriteString(tail)
		}
		ls[i] = b.String()
		replaced = true
	}

	if !replaced {
		return "", zerr.With(zerr.With(domain.ErrDependencyNotFound, "dependency", name.String()), "requirement", oldRequirement)
	}
	return strings.Join(ls, "\n"), nil
}
