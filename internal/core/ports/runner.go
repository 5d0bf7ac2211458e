// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// ProcessRunner executes external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes cmd and blocks until it exits.
	//
	// On a zero exit status it returns the captured combined output.
	// On a non-zero exit status it returns a *domain.SubprocessError carrying the output,
	// the command line, the elapsed time and the exit descriptor.
	// No timeout is imposed beyond ctx.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
