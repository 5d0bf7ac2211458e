package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relock/internal/core/domain"
)

// Fingerprint returns a stable digest of the names and contents of files, in the given order.
// Equal fingerprints mean an attempt would see byte-identical inputs.
func Fingerprint(files []domain.ManifestFile) string {
	hasher := xxhash.New()
	for _, f := range files {
		_, _ = hasher.WriteString(f.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(f.Content)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
