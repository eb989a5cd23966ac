// Package pip bundles Python packages with `pip download`.
package pip

import (
	"context"
	"fmt"

	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

var _ ports.Strategy = (*Strategy)(nil)

// Strategy downloads a package and its dependencies as wheels and sdists.
type Strategy struct {
	*bundler.Base
}

// New creates the pip strategy.
func New(deps bundler.Deps) *Strategy {
	return &Strategy{Base: bundler.NewBase(domain.EcosystemPip, deps)}
}

// PackageSpec returns name==version, or name when no version is requested.
func PackageSpec(req domain.BundleRequest) string {
	if req.Version == "" {
		return req.Name
	}
	return req.Name + "==" + req.Version
}

// FetchBundle runs a single pip download into the output directory.
func (s *Strategy) FetchBundle(ctx context.Context, req domain.BundleRequest) (string, error) {
	outDir, err := s.PrepareOutput(req)
	if err != nil {
		return "", err
	}

	spec := PackageSpec(req)
	s.Logger.Info(fmt.Sprintf("Downloading %s and dependencies to %s...", spec, outDir))

	args := []string{"download", "--dest", outDir, spec}
	args = append(args, req.ExtraArgs...)

	var secrets []string
	if req.HasRepository() {
		var indexArgs []string
		indexArgs, secrets = s.indexArgs(req)
		args = append(args, indexArgs...)
	}

	if _, err := s.Run(ctx, secrets, args...); err != nil {
		return "", err
	}

	s.Logger.Info(fmt.Sprintf("Offline pip bundle for %s is ready in %s", spec, outDir))
	return outDir, nil
}

// indexArgs builds --index-url and --trusted-host for a custom repository.
// A URL that does not parse is passed through as-is without credentials.
func (s *Strategy) indexArgs(req domain.BundleRequest) ([]string, []string) {
	u, ok := bundler.ParseRepositoryURL(req.RepositoryURL)
	if !ok {
		s.Logger.Warn("Invalid repository URL provided, ignoring credentials injection.")
		return []string{"--index-url", req.RepositoryURL}, nil
	}

	indexURL, secrets, _ := bundler.WithCredentials(req.RepositoryURL, req.Credentials)
	return []string{"--index-url", indexURL, "--trusted-host", u.Hostname()}, secrets
}
