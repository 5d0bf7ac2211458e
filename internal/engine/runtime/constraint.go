package runtime

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Requirement is a set of alternatives. It is satisfied when any alternative is.
type Requirement struct {
	raw          string
	alternatives []*semver.Constraints
}

// ParseRequirement parses a python version requirement such as ">=3.8,<3.12", "~=3.9",
// "==3.11.*" or "^3.8 || ^4". Alternatives are separated by "||".
func ParseRequirement(raw string) (Requirement, error) {
	req := Requirement{raw: raw}
	for _, alt := range strings.Split(raw, "||") {
		translated, err := translate(alt)
		if err != nil {
			return Requirement{}, zerr.With(err, "requirement", raw)
		}
		c, err := semver.NewConstraint(translated)
		if err != nil {
			return Requirement{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidRequirement.Error()), "requirement", raw)
		}
		req.alternatives = append(req.alternatives, c)
	}
	return req, nil
}

// Check reports whether v satisfies any alternative.
func (r Requirement) Check(v *semver.Version) bool {
	for _, c := range r.alternatives {
		if c.Check(v) {
			return true
		}
	}
	return false
}

// String returns the requirement as written.
func (r Requirement) String() string {
	return r.raw
}

// translate rewrites a comma separated list of PEP 440 specifiers into semver syntax.
func translate(alt string) (string, error) {
	var parts []string
	for _, spec := range strings.Split(alt, ",") {
		spec = strings.ReplaceAll(spec, " ", "")
		if spec == "" {
			continue
		}
		translated, err := translateSpecifier(spec)
		if err != nil {
			return "", err
		}
		parts = append(parts, translated...)
	}
	if len(parts) == 0 {
		return "", zerr.With(domain.ErrInvalidRequirement, "reason", "empty alternative")
	}
	return strings.Join(parts, ", "), nil
}

func translateSpecifier(spec string) ([]string, error) {
	switch {
	case strings.HasPrefix(spec, "==="):
		return []string{"=" + spec[3:]}, nil
	case strings.HasPrefix(spec, "~="):
		return compatibleRelease(spec[2:])
	case strings.HasPrefix(spec, "=="):
		return []string{"=" + wildcard(spec[2:])}, nil
	case strings.HasPrefix(spec, "!="):
		return []string{"!=" + wildcard(spec[2:])}, nil
	case spec[0] >= '0' && spec[0] <= '9':
		// Poetry and pin files allow a bare version.
		return []string{"=" + wildcard(spec)}, nil
	default:
		// >=, <=, >, <, ^ and ~ share their meaning with semver.
		return []string{spec}, nil
	}
}

// compatibleRelease expands "~=X.Y" to ">=X.Y, <X+1" and "~=X.Y.Z" to ">=X.Y.Z, <X.Y+1".
func compatibleRelease(version string) ([]string, error) {
	segments := strings.Split(version, ".")
	if len(segments) < 2 {
		return nil, zerr.With(domain.ErrInvalidRequirement, "reason", "~= needs at least two release segments")
	}
	upper := segments[:len(segments)-1]
	last, err := strconv.Atoi(upper[len(upper)-1])
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidRequirement.Error()), "version", version)
	}
	bumped := append(append([]string{}, upper[:len(upper)-1]...), strconv.Itoa(last+1))
	return []string{">=" + version, "<" + strings.Join(bumped, ".")}, nil
}

func wildcard(version string) string {
	return strings.ReplaceAll(version, "*", "x")
}
