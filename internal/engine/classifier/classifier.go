// Package classifier maps resolver failure output to a small taxonomy of failure kinds.
package classifier

import (
	"path"
	"regexp"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
)

// Kind is the classification of a resolver failure.
type Kind int

const (
	// KindUnknown is any failure no rule recognises. It propagates unchanged.
	KindUnknown Kind = iota
	// KindUnresolvableConstraint means no version satisfies the requirements.
	KindUnresolvableConstraint
	// KindUnsupportedConstraint means the resolver rejected a constraint format.
	KindUnsupportedConstraint
	// KindGitSourceUnreachable means a git dependency could not be cloned.
	KindGitSourceUnreachable
	// KindGitReferenceNotFound means a git dependency names a missing branch or tag.
	KindGitReferenceNotFound
	// KindNativeCompilation means building a wheel failed while compiling native code.
	KindNativeCompilation
	// KindBuildStepFailure means a package's setup.py egg_info step failed.
	KindBuildStepFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnresolvableConstraint:
		return "unresolvable constraint"
	case KindUnsupportedConstraint:
		return "unsupported constraint"
	case KindGitSourceUnreachable:
		return "git source unreachable"
	case KindGitReferenceNotFound:
		return "git reference not found"
	case KindNativeCompilation:
		return "native compilation"
	case KindBuildStepFailure:
		return "build step failure"
	default:
		return "unknown"
	}
}

// Classification is the result of Classify. URL and Ref are set for git failures and carry no credentials.
type Classification struct {
	Kind Kind
	URL  string
	Ref  string
}

// Rule pairs a pattern with the kind it signals. Capture groups named "url" and "ref" are extracted.
type Rule struct {
	Kind    Kind
	Pattern *regexp.Regexp
}

// Rules is the classification table. The first matching rule wins. pip echoes the clone
// command for every git dependency, so the clone rule only applies when nothing more specific matched.
var Rules = []Rule{
	{Kind: KindUnresolvableConstraint, Pattern: regexp.MustCompile(`Could not find a version|ResolutionImpossible`)},
	{Kind: KindUnsupportedConstraint, Pattern: regexp.MustCompile(`UnsupportedConstraint`)},
	{Kind: KindGitReferenceNotFound, Pattern: regexp.MustCompile(`Did not find branch or tag '(?P<ref>[^'\n"]+)'`)},
	{Kind: KindGitReferenceNotFound, Pattern: regexp.MustCompile(`git checkout -q (?P<ref>\S+)`)},
	{Kind: KindNativeCompilation, Pattern: regexp.MustCompile(`Getting requirements to build wheel (?:exited with 1|did not run successfully)`)},
	{Kind: KindBuildStepFailure, Pattern: regexp.MustCompile(`python setup\.py egg_info`)},
	{Kind: KindGitSourceUnreachable, Pattern: regexp.MustCompile(`git clone (?:--filter=blob:none )?(?:-q|--quiet) (?P<url>\S+)`)},
}

var (
	buildStep     = regexp.MustCompile(`python setup\.py egg_info`)
	anyURL        = regexp.MustCompile(`https?://\S+`)
	runtimeHints  = []string{"UnsupportedPythonVersion", "not find a version that satisfies", "No matching distribution found", "InstallationError"}
	certainMarker = "UnsupportedPythonVersion"
)

// Redacted replaces URLs in user facing messages.
const Redacted = "<redacted>"

// Classify returns the classification of the first rule matching message.
func Classify(message string) Classification {
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		c := Classification{Kind: rule.Kind}
		if i := rule.Pattern.SubexpIndex("url"); i > 0 {
			c.URL = domain.StripUserinfo(m[i])
		}
		if i := rule.Pattern.SubexpIndex("ref"); i > 0 {
			c.Ref = refSegment(m[i])
		}
		return c
	}
	return Classification{Kind: KindUnknown}
}

// SuggestsBadRuntimeVersion reports whether message may be caused by the pinned runtime version.
func SuggestsBadRuntimeVersion(message string) bool {
	for _, hint := range runtimeHints {
		if strings.Contains(message, hint) {
			return true
		}
	}
	return buildStep.MatchString(message)
}

// CertainlyBadRuntimeVersion reports whether message is unambiguously a runtime version problem.
func CertainlyBadRuntimeVersion(message string) bool {
	if strings.Contains(message, certainMarker) {
		return true
	}
	return buildStep.MatchString(message) && strings.Contains(message, "SyntaxError")
}

// ChooseRelevant picks which of two attempts' errors to surface: the original unless the
// latest one is less clearly a runtime problem.
func ChooseRelevant(original, latest error) error {
	if latest == nil {
		return original
	}
	if original != nil && CertainlyBadRuntimeVersion(latest.Error()) {
		return original
	}
	return latest
}

// CleanMessage drops the traceback preamble and anything after "During handling of",
// and replaces URLs with Redacted.
func CleanMessage(message string) string {
	lines := strings.SplitAfter(message, "\n")

	kept := make([]string, 0, len(lines))
	preamble := true
	for _, line := range lines {
		if strings.HasPrefix(line, "During handling of") {
			break
		}
		if preamble && (strings.HasPrefix(line, "Traceback") || strings.HasPrefix(line, "  ")) {
			continue
		}
		preamble = false
		kept = append(kept, line)
	}
	return Redact(strings.TrimSpace(strings.Join(kept, "")))
}

// Redact replaces every URL in s with Redacted.
func Redact(s string) string {
	return anyURL.ReplaceAllString(s, Redacted)
}

// refSegment returns the last path segment of a URL-like ref, or the ref itself.
func refSegment(ref string) string {
	ref = strings.TrimSuffix(domain.StripUserinfo(ref), "/")
	if strings.Contains(ref, "://") {
		return path.Base(ref)
	}
	return ref
}
