package ports

import "context"

// RuntimeManager installs runtime versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeManager interface {
	// EnsureInstalled installs version and its helper tooling when it is not installed yet.
	EnsureInstalled(ctx context.Context, version string, env map[string]string) error
}
