package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
)

type countingSanitizer struct {
	calls int
}

func (s *countingSanitizer) Sanitize(f domain.ManifestFile) string {
	s.calls++
	return "stub:" + f.Content
}

func TestSanitize_CachesByNameAndContent(t *testing.T) {
	sanitizer := &countingSanitizer{}
	o, err := New(Tools{Sanitizer: sanitizer}, Job{})
	require.NoError(t, err)

	setup := domain.ManifestFile{Name: "setup.py", Content: "setup()"}
	assert.Equal(t, "stub:setup()", o.sanitize(setup))
	assert.Equal(t, "stub:setup()", o.sanitize(setup))
	assert.Equal(t, 1, sanitizer.calls)

	edited := domain.ManifestFile{Name: "setup.py", Content: "setup(name='x')"}
	assert.Equal(t, "stub:setup(name='x')", o.sanitize(edited))
	assert.Equal(t, 2, sanitizer.calls)

	nested := domain.ManifestFile{Name: "lib/setup.py", Content: "setup()"}
	o.sanitize(nested)
	assert.Equal(t, 3, sanitizer.calls)
}
