package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// DefinitionResolver resolves a gem definition against remote sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=definition_resolver.go -destination=mocks/mock_definition_resolver.go -package=mocks
type DefinitionResolver interface {
	// TopLevel returns the requirements declared directly in the definition's Gemfile.
	TopLevel(ctx context.Context, def domain.Definition) ([]domain.GemRequirement, error)

	// Resolve resolves def and returns the selected specs.
	// A version conflict is reported as *domain.VersionConflictError.
	Resolve(ctx context.Context, def domain.Definition) ([]domain.ResolvedSpec, error)
}

// LockfileParser reads gem lockfiles.
type LockfileParser interface {
	// Specs returns the locked specs of content.
	Specs(content string) ([]domain.LockedSpec, error)

	// Dependencies returns the top-level requirements recorded in content.
	Dependencies(content string) ([]domain.GemRequirement, error)
}
