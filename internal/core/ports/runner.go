// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bale/internal/core/domain"
)

// CommandRunner runs external package manager tools.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command, streaming its output to the operator while
	// capturing it, and returns the captured stdout.
	//
	// A non-zero exit or a spawn failure yields a *domain.ExternalToolError.
	// There are no retries and no timeout beyond ctx.
	Run(ctx context.Context, cmd domain.Command) (string, error)
}
