package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GemSource = (*Source)(nil)

// LoadGems reads the Gemfile of dir and its lockfile. A missing Gemfile is ErrNoManifests;
// a missing lockfile is not an error.
func (s *Source) LoadGems(dir string) (domain.ManifestFile, *domain.ManifestFile, error) {
	gemfile, err := readManifest(dir, domain.GemfileName)
	if errors.Is(err, iofs.ErrNotExist) {
		return domain.ManifestFile{}, nil, zerr.With(domain.ErrNoManifests, "dir", dir)
	}
	if err != nil {
		return domain.ManifestFile{}, nil, err
	}

	lockfile, err := readManifest(dir, domain.GemLockfileName)
	if errors.Is(err, iofs.ErrNotExist) {
		return gemfile, nil, nil
	}
	if err != nil {
		return domain.ManifestFile{}, nil, err
	}
	return gemfile, &lockfile, nil
}

func readManifest(dir, name string) (domain.ManifestFile, error) {
	data, err := os.ReadFile(filepath.Join(dir, name)) //nolint:gosec // fixed manifest names
	if errors.Is(err, iofs.ErrNotExist) {
		return domain.ManifestFile{}, err
	}
	if err != nil {
		return domain.ManifestFile{}, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "manifest", name)
	}
	return domain.ManifestFile{Name: name, Content: string(data), Role: domain.RoleCompiled}, nil
}
