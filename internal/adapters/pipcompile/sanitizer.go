package pipcompile

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

var _ ports.BuildConfigSanitizer = (*Sanitizer)(nil)

// SanitizedPackageName is the package name every sanitized build config declares.
const SanitizedPackageName = "sanitized-package"

// stringListBody matches a bracketed list whose quoted items may themselves contain brackets.
const stringListBody = `\[((?:[^\[\]'"]|'[^']*'|"[^"]*")*)\]`

var (
	installReqs = regexp.MustCompile(`install_requires\s*=\s*` + stringListBody)
	setupReqs   = regexp.MustCompile(`setup_requires\s*=\s*` + stringListBody)
	quoted      = regexp.MustCompile(`['"]([^'"]+)['"]`)
)

// Sanitizer replaces setup.py and setup.cfg with stubs that declare the same requirements
// without running project code.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize returns the stub for file. Files that are not build configs are returned unchanged.
func (s *Sanitizer) Sanitize(file domain.ManifestFile) string {
	switch baseName(file.Name) {
	case "setup.cfg":
		return "[metadata]\nname = " + SanitizedPackageName + "\n"
	case "setup.py":
		return sanitizeSetupPy(file.Content)
	default:
		return file.Content
	}
}

func sanitizeSetupPy(content string) string {
	var b strings.Builder
	b.WriteString("from setuptools import setup\n\nsetup(\n")
	fmt.Fprintf(&b, "    name=%q,\n", SanitizedPackageName)
	b.WriteString("    version=\"0.0.1\",\n")
	if m := pythonRequires.FindStringSubmatch(content); m != nil {
		fmt.Fprintf(&b, "    python_requires=%q,\n", m[1])
	}
	writeList(&b, "install_requires", installReqs, content)
	writeList(&b, "setup_requires", setupReqs, content)
	b.WriteString(")\n")
	return b.String()
}

func writeList(b *strings.Builder, key string, re *regexp.Regexp, content string) {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return
	}
	items := quoted.FindAllStringSubmatch(m[1], -1)
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "    %s=[\n", key)
	for _, item := range items {
		fmt.Fprintf(b, "        %q,\n", item[1])
	}
	b.WriteString("    ],\n")
}
