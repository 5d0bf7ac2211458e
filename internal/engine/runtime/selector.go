// Package runtime selects the python runtime a resolution runs under.
package runtime

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selection is the pinned runtime version and whether the project asked for it.
type Selection struct {
	Version       string
	UserSpecified bool
}

// Selector picks the newest supported runtime satisfying the manifests' constraints.
type Selector struct {
	parser    ports.RuntimeRequirementParser
	supported []string
	fallback  string
	dflt      string
}

// NewSelector creates a Selector over the supported versions of cfg.
func NewSelector(parser ports.RuntimeRequirementParser, cfg domain.RuntimeConfig) *Selector {
	return &Selector{
		parser:    parser,
		supported: cfg.Supported,
		fallback:  cfg.Fallback,
		dflt:      cfg.Default,
	}
}

// Select returns, in priority order, the newest supported version satisfying every user
// declared constraint, the newest satisfying every imputed constraint, or the default.
// A user constraint that cannot be parsed is an error; unparseable markers are ignored.
func (s *Selector) Select(files []domain.ManifestFile) (Selection, error) {
	user, err := parseAll(s.parser.UserSpecified(files), true)
	if err != nil {
		return Selection{}, err
	}
	if len(user) > 0 {
		if v, ok := s.newestSatisfying(user); ok {
			return Selection{Version: v, UserSpecified: true}, nil
		}
	}

	imputed, _ := parseAll(s.parser.Imputed(files), false)
	if len(imputed) > 0 {
		if v, ok := s.newestSatisfying(imputed); ok {
			return Selection{Version: v}, nil
		}
	}

	return Selection{Version: s.dflt}, nil
}

// Fallback returns the version retried when a failure looks runtime related.
func (s *Selector) Fallback() string {
	return s.fallback
}

func (s *Selector) newestSatisfying(reqs []Requirement) (string, bool) {
	for _, candidate := range s.supported {
		v, err := semver.NewVersion(candidate)
		if err != nil {
			continue
		}
		if satisfiesAll(v, reqs) {
			return candidate, true
		}
	}
	return "", false
}

func satisfiesAll(v *semver.Version, reqs []Requirement) bool {
	for _, r := range reqs {
		if !r.Check(v) {
			return false
		}
	}
	return true
}

func parseAll(raw []string, strict bool) ([]Requirement, error) {
	reqs := make([]Requirement, 0, len(raw))
	for _, r := range raw {
		req, err := ParseRequirement(r)
		if err != nil {
			if strict {
				return nil, zerr.Wrap(err, "invalid runtime constraint")
			}
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
