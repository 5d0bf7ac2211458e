package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// AuthURLBuilder builds authenticated URLs from credentials.
type AuthURLBuilder interface {
	// Build returns the credential's URL with authentication embedded.
	Build(cred domain.Credential) (string, error)
}

// GitConfigurer scopes git credential configuration to a block of work.
//
//go:generate go run go.uber.org/mock/mockgen -source=credentials.go -destination=mocks/mock_credentials.go -package=mocks
type GitConfigurer interface {
	// WithGitConfigured runs fn with git configured for creds.
	// env carries the variables every command run inside fn must add to its environment.
	// The configuration is removed when fn returns.
	WithGitConfigured(
		ctx context.Context,
		creds []domain.Credential,
		fn func(ctx context.Context, env map[string]string) error,
	) error
}
