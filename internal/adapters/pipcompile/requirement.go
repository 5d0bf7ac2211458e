// Package pipcompile understands just enough of pip requirement files to locate dependency
// declarations, cross-file references and runtime markers.
package pipcompile

import (
	"regexp"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
)

// requirementLine splits a declaration into head (indent, name, extras), specifier, and tail
// (environment marker, comment, line continuation).
var requirementLine = regexp.MustCompile(
	`^(?P<head>\s*(?P<name>[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)(?:\s*\[[^\]]*\])?)` +
		`\s*(?P<spec>(?:===|[<>=!~]=?)[^;#\\]*?)?` +
		`(?P<gap>\s*)` +
		`(?P<tail>(?:;[^#\\]*)?(?:#.*)?(?:\\)?)$`,
)

var (
	headIdx = requirementLine.SubexpIndex("head")
	nameIdx = requirementLine.SubexpIndex("name")
	specIdx = requirementLine.SubexpIndex("spec")
	gapIdx  = requirementLine.SubexpIndex("gap")
	tailIdx = requirementLine.SubexpIndex("tail")
)

// declaration is a parsed requirement line.
type declaration struct {
	name   domain.Name
	spec   string
	marker string
}

// parseLine returns the declaration on line, if the line declares a named requirement.
func parseLine(line string) (declaration, bool) {
	if skipLine(line) {
		return declaration{}, false
	}
	m := requirementLine.FindStringSubmatch(line)
	if m == nil {
		return declaration{}, false
	}
	d := declaration{
		name: domain.NewName(m[nameIdx]),
		spec: normalizeSpec(m[specIdx]),
	}
	if tail := m[tailIdx]; strings.HasPrefix(tail, ";") {
		marker := strings.TrimPrefix(tail, ";")
		if i := strings.Index(marker, "#"); i >= 0 {
			marker = marker[:i]
		}
		d.marker = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(marker), `\`))
	}
	return d, true
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "", strings.HasPrefix(trimmed, "#"), strings.HasPrefix(trimmed, "-"):
		return true
	case strings.Contains(trimmed, "://"), strings.Contains(trimmed, " @ "):
		return true
	}
	return false
}

// normalizeSpec removes whitespace so that "== 1.0, <2" and "==1.0,<2" compare equal.
func normalizeSpec(spec string) string {
	return strings.Join(strings.Fields(spec), "")
}

// pinnedVersion returns X for a "==X" or "===X" specifier.
func pinnedVersion(spec string) (string, bool) {
	if v, ok := strings.CutPrefix(spec, "==="); ok {
		return v, v != ""
	}
	if v, ok := strings.CutPrefix(spec, "=="); ok && !strings.ContainsAny(v, ",*") {
		return v, v != ""
	}
	return "", false
}

func lines(content string) []string {
	return strings.Split(content, "\n")
}
