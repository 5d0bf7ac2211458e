package unlock

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	unconstrained = regexp.MustCompile(`^(?:>=\s*0(?:\.0)*)?$`)
	gemSpecifier  = regexp.MustCompile(`^(~>|>=|<=|!=|=|>|<)?\s*(\S+)$`)
	gemVersionRe  = regexp.MustCompile(`^[0-9]+(?:\.[0-9a-zA-Z]+)*(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)
	segmentToken  = regexp.MustCompile(`[0-9]+|[a-zA-Z]+`)
)

// isUnconstrained reports whether requirement is trivially satisfied (empty or ">= 0").
func isUnconstrained(requirement string) bool {
	return unconstrained.MatchString(strings.TrimSpace(requirement))
}

// segment is one part of a gem version. Letter runs are prerelease markers.
type segment struct {
	num   int
	str   string
	isStr bool
}

// gemVersion is a gem version split into segments, in any number.
// "1.0.0.rc1", "1.0.0rc1" and "1.0.0-rc1" all read as 1, 0, 0, "rc", 1 (the last with an extra "pre").
type gemVersion []segment

func parseGemVersion(s string) (gemVersion, bool) {
	s = strings.TrimSpace(s)
	if !gemVersionRe.MatchString(s) {
		return nil, false
	}
	s = strings.ReplaceAll(s, "-", ".pre.")

	var v gemVersion
	for _, tok := range segmentToken.FindAllString(s, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			v = append(v, segment{str: tok, isStr: true})
			continue
		}
		v = append(v, segment{num: n})
	}
	return v, true
}

func (v gemVersion) at(i int) segment {
	if i < len(v) {
		return v[i]
	}
	return segment{}
}

// compare orders versions the way rubygems does: missing segments are zero,
// and a prerelease segment sorts below any number.
func (v gemVersion) compare(other gemVersion) int {
	for i := range max(len(v), len(other)) {
		l, r := v.at(i), other.at(i)
		switch {
		case l.isStr && r.isStr:
			if c := strings.Compare(l.str, r.str); c != 0 {
				return c
			}
		case l.isStr:
			return -1
		case r.isStr:
			return 1
		default:
			if c := cmp.Compare(l.num, r.num); c != 0 {
				return c
			}
		}
	}
	return 0
}

// bump returns the exclusive upper bound of "~> v": "~> 2.1" is below 3, "~> 2.1.3" is below 2.2.
func (v gemVersion) bump() gemVersion {
	release := v
	if i := slices.IndexFunc(v, func(s segment) bool { return s.isStr }); i >= 0 {
		release = v[:i]
	}
	if len(release) > 1 {
		release = release[:len(release)-1]
	}
	out := slices.Clone(release)
	out[len(out)-1].num++
	return out
}

// satisfies reports whether version meets a gem requirement such as "~> 2.0, >= 2.2.0".
// Requirements or versions that cannot be interpreted are reported as unsatisfied.
func satisfies(version, requirement string) bool {
	v, ok := parseGemVersion(version)
	if !ok {
		return false
	}
	for _, spec := range strings.Split(requirement, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		m := gemSpecifier.FindStringSubmatch(spec)
		if m == nil {
			return false
		}
		want, ok := parseGemVersion(m[2])
		if !ok {
			return false
		}
		if !meets(v, m[1], want) {
			return false
		}
	}
	return true
}

func meets(v gemVersion, op string, want gemVersion) bool {
	c := v.compare(want)
	switch op {
	case "", "=":
		return c == 0
	case "!=":
		return c != 0
	case ">":
		return c > 0
	case "<":
		return c < 0
	case ">=":
		return c >= 0
	case "<=":
		return c <= 0
	case "~>":
		return c >= 0 && v.compare(want.bump()) < 0
	}
	return false
}
