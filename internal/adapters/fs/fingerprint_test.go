package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/core/domain"
)

func TestFingerprint(t *testing.T) {
	a := []domain.ManifestFile{{Name: "a.in", Content: "django\n"}, {Name: "b.in", Content: "-r a.in\n"}}
	b := []domain.ManifestFile{{Name: "a.in", Content: "django\n"}, {Name: "b.in", Content: "-r a.in\n"}}
	c := []domain.ManifestFile{{Name: "a.in", Content: "django>=4\n"}, {Name: "b.in", Content: "-r a.in\n"}}

	assert.Equal(t, fs.Fingerprint(a), fs.Fingerprint(b))
	assert.NotEqual(t, fs.Fingerprint(a), fs.Fingerprint(c))
	assert.Len(t, fs.Fingerprint(a), 16)

	// Name/content boundaries are separated.
	assert.NotEqual(t,
		fs.Fingerprint([]domain.ManifestFile{{Name: "ab", Content: "c"}}),
		fs.Fingerprint([]domain.ManifestFile{{Name: "a", Content: "bc"}}),
	)
}
