package domain

import (
	"regexp"
	"strings"
	"sync"
	"unique"
)

// RuntimeDependencyName is the pseudo-dependency a gem resolver uses for the Ruby runtime itself.
// It can never be unlocked.
var RuntimeDependencyName = NewName("ruby\x00")

var separatorRun = regexp.MustCompile(`[-_.]+`)

// spellings maps a normalized name to the spelling used when the name leaves the process.
var spellings sync.Map

// Name is a value object wrapping an interned, normalized dependency name.
// Two names compare equal when they differ only in case or in runs of "-", "_" and ".".
type Name struct {
	h unique.Handle[string]
}

// NewName normalizes and interns s.
func NewName(s string) Name {
	norm := NormalizeName(s)
	spellings.LoadOrStore(norm, strings.TrimSpace(s))
	return Name{h: unique.Make(norm)}
}

// NewSpelledName is NewName for names read from a manifest or a resolver. Their spelling replaces
// whatever spelling was recorded before, since package indexes match gem names exactly.
func NewSpelledName(s string) Name {
	norm := NormalizeName(s)
	spellings.Store(norm, strings.TrimSpace(s))
	return Name{h: unique.Make(norm)}
}

// NormalizeName lower-cases s and collapses separator runs into a single "-".
func NormalizeName(s string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// String returns the normalized name.
func (n Name) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// Spelling returns the name as it was written, preferring manifest and resolver spellings.
func (n Name) Spelling() string {
	norm := n.String()
	if v, ok := spellings.Load(norm); ok {
		return v.(string)
	}
	return norm
}

// IsZero reports whether n was never set.
func (n Name) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	*n = NewName(string(text))
	return nil
}
