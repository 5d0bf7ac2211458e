package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// Workspace provides disposable directories for resolution attempts.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Scoped creates a fresh temporary directory, runs fn inside it and removes the directory
	// on every exit path.
	Scoped(ctx context.Context, fn func(ctx context.Context, dir string) error) error

	// Write writes content to name (relative to dir), creating parent directories.
	Write(dir, name, content string) error

	// Read reads name (relative to dir).
	Read(dir, name string) (string, error)

	// Remove deletes name (relative to dir). Missing files are not an error.
	Remove(dir, name string) error
}

// ManifestSource loads project manifests from disk.
type ManifestSource interface {
	// Load returns the manifests found in dir.
	Load(dir string) ([]domain.ManifestFile, error)
}

// GemSource loads the manifest pair of a gem project from disk.
type GemSource interface {
	// LoadGems returns the Gemfile in dir and its lockfile, which is nil when the project has none.
	LoadGems(dir string) (domain.ManifestFile, *domain.ManifestFile, error)
}
