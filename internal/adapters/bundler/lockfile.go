package bundler

import (
	"bufio"
	"regexp"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileParser = (*LockfileParser)(nil)

const (
	specIndent       = "    "
	dependencyIndent = "      "
	topLevelIndent   = "  "
)

// lockEntry matches "name (requirement)", "name!" and bare "name".
var lockEntry = regexp.MustCompile(`^(?P<name>[^\s(!]+)!?(?:\s+\((?P<req>[^)]*)\))?$`)

var sourceSections = map[string]bool{
	"GEM":           true,
	"GIT":           true,
	"PATH":          true,
	"PLUGIN SOURCE": true,
}

// LockfileParser reads Gemfile.lock content.
type LockfileParser struct{}

// NewLockfileParser creates a LockfileParser.
func NewLockfileParser() *LockfileParser {
	return &LockfileParser{}
}

// Specs returns every locked spec of every source section, in file order.
// Platform suffixes ("1.15.0-x86_64-linux") are dropped from versions.
func (p *LockfileParser) Specs(content string) ([]domain.LockedSpec, error) {
	var (
		specs   []domain.LockedSpec
		section string
		inSpecs bool
		lineNo  int
	)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \r")
		switch {
		case line == "":
			inSpecs = false
		case !strings.HasPrefix(line, " "):
			section = line
			inSpecs = false
		case !sourceSections[section]:
		case strings.TrimSpace(line) == "specs:":
			inSpecs = true
		case !inSpecs:
		case strings.HasPrefix(line, dependencyIndent) && !strings.HasPrefix(line, dependencyIndent+" "):
			if len(specs) == 0 {
				return nil, malformed(lineNo, line)
			}
			name, req, ok := parseEntry(line)
			if !ok {
				return nil, malformed(lineNo, line)
			}
			last := &specs[len(specs)-1]
			last.Dependencies = append(last.Dependencies, domain.GemRequirement{Name: name, Requirement: req})
		case strings.HasPrefix(line, specIndent) && !strings.HasPrefix(line, specIndent+" "):
			name, version, ok := parseEntry(line)
			if !ok || version == "" {
				return nil, malformed(lineNo, line)
			}
			specs = append(specs, domain.LockedSpec{Name: name, Version: stripPlatform(version)})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}
	return specs, nil
}

// Dependencies returns the DEPENDENCIES section.
func (p *LockfileParser) Dependencies(content string) ([]domain.GemRequirement, error) {
	var (
		deps    []domain.GemRequirement
		section string
		lineNo  int
	)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \r")
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, " ") {
			section = line
			continue
		}
		if section != "DEPENDENCIES" || strings.HasPrefix(line, topLevelIndent+" ") {
			continue
		}
		name, req, ok := parseEntry(line)
		if !ok {
			return nil, malformed(lineNo, line)
		}
		deps = append(deps, domain.GemRequirement{Name: name, Requirement: req})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}
	return deps, nil
}

func parseEntry(line string) (domain.Name, string, bool) {
	m := lockEntry.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.Name{}, "", false
	}
	return domain.NewSpelledName(m[lockEntry.SubexpIndex("name")]), strings.TrimSpace(m[lockEntry.SubexpIndex("req")]), true
}

func stripPlatform(version string) string {
	if i := strings.IndexByte(version, '-'); i > 0 {
		return version[:i]
	}
	return version
}

func malformed(lineNo int, line string) error {
	err := zerr.With(domain.ErrLockfileParseFailed, "line", lineNo)
	return zerr.With(err, "content", strings.TrimSpace(line))
}
