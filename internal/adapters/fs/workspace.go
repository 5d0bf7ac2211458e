// Package fs provides file system adapters: attempt workspaces, manifest discovery and
// content fingerprints.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace creates disposable directories under a base temp dir.
type Workspace struct {
	base string
}

// NewWorkspace creates a Workspace rooted at base. An empty base uses os.TempDir().
func NewWorkspace(base string) *Workspace {
	return &Workspace{base: base}
}

// Scoped creates a fresh directory, runs fn in it and removes the directory afterwards.
func (w *Workspace) Scoped(ctx context.Context, fn func(ctx context.Context, dir string) error) (err error) {
	dir, mkErr := os.MkdirTemp(w.base, domain.WorkspacePattern)
	if mkErr != nil {
		return zerr.Wrap(mkErr, domain.ErrWorkspaceCreateFailed.Error())
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			err = zerr.With(zerr.Wrap(rmErr, "failed to remove workspace"), "dir", dir)
		}
	}()

	return fn(ctx, dir)
}

// Write writes content to name inside dir, creating parent directories.
func (w *Workspace) Write(dir, name, content string) error {
	path, err := within(dir, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkspaceWriteFailed.Error()), "file", name)
	}
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkspaceWriteFailed.Error()), "file", name)
	}
	return nil
}

// Read reads name inside dir.
func (w *Workspace) Read(dir, name string) (string, error) {
	path, err := within(dir, name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) //nolint:gosec // confined to the workspace by within
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWorkspaceReadFailed.Error()), "file", name)
	}
	return string(data), nil
}

// Remove deletes name inside dir. A missing file is not an error.
func (w *Workspace) Remove(dir, name string) error {
	path, err := within(dir, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove workspace file"), "file", name)
	}
	return nil
}

// within joins a manifest name onto dir and rejects names escaping it.
func within(dir, name string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrWorkspaceWriteFailed, "file", name)
	}
	return path, nil
}
