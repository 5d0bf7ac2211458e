package fs

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestSource = (*Source)(nil)

// skippedDirs are never searched for manifests.
var skippedDirs = map[string]struct{}{
	".git":               {},
	".jj":                {},
	domain.RelockDirName: {},
	"node_modules":       {},
	".venv":              {},
	"venv":               {},
	"__pycache__":        {},
	".tox":               {},
}

// Source discovers the python manifests of a project directory.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Load returns the manifests found in dir, sorted by name. Names are relative with forward slashes.
func (s *Source) Load(dir string) ([]domain.ManifestFile, error) {
	var names []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip && p != dir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "dir", dir)
	}

	inputs := make(map[string]struct{})
	for _, n := range names {
		if strings.HasSuffix(n, domain.InputExt) {
			inputs[n] = struct{}{}
		}
	}

	var files []domain.ManifestFile
	for _, n := range names {
		if !isManifest(n, inputs) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(n))) //nolint:gosec // walked from dir
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "manifest", n)
		}
		files = append(files, domain.ManifestFile{
			Name:    n,
			Content: string(data),
			Role:    domain.RoleForFilename(n),
		})
	}

	if len(files) == 0 {
		return nil, zerr.With(domain.ErrNoManifests, "dir", dir)
	}

	slices.SortFunc(files, func(a, b domain.ManifestFile) int { return strings.Compare(a.Name, b.Name) })
	return files, nil
}

func isManifest(name string, inputs map[string]struct{}) bool {
	base := path.Base(name)
	switch {
	case strings.HasSuffix(base, domain.InputExt):
		return true
	case strings.HasSuffix(base, domain.CompiledExt) && base != "runtime.txt":
		if _, ok := inputs[domain.InputName(name)]; ok {
			return true
		}
		return strings.Contains(base, "requirements")
	}
	return domain.RoleForFilename(name) != domain.RoleCompiled
}
