// Package apk bundles Alpine packages with `apk fetch`.
package apk

import (
	"context"
	"fmt"

	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

var _ ports.Strategy = (*Strategy)(nil)

// Strategy fetches a package and its recursive dependencies.
type Strategy struct {
	*bundler.Base
}

// New creates the apk strategy.
func New(deps bundler.Deps) *Strategy {
	return &Strategy{Base: bundler.NewBase(domain.EcosystemAPK, deps)}
}

// PackageSpec returns name=version, or name when no version is requested.
func PackageSpec(req domain.BundleRequest) string {
	if req.Version == "" {
		return req.Name
	}
	return req.Name + "=" + req.Version
}

// FetchBundle runs a single recursive apk fetch into the output directory.
func (s *Strategy) FetchBundle(ctx context.Context, req domain.BundleRequest) (string, error) {
	outDir, err := s.PrepareOutput(req)
	if err != nil {
		return "", err
	}

	spec := PackageSpec(req)
	s.Logger.Info(fmt.Sprintf("Downloading %s to %s...", spec, outDir))

	args := []string{"fetch", "-o", outDir, "-R"}
	var secrets []string
	if req.HasRepository() {
		var repo string
		repo, secrets = RepositoryURL(req.RepositoryURL, req.Credentials)
		args = append(args, "--repository", repo)
	}
	args = append(args, spec)
	args = append(args, req.ExtraArgs...)

	if _, err := s.Run(ctx, secrets, args...); err != nil {
		return "", err
	}

	s.Logger.Info(fmt.Sprintf("Offline APK bundle for %s is ready in %s", spec, outDir))
	return outDir, nil
}

// RepositoryURL injects complete credentials into raw unless it already
// carries userinfo. Unparseable URLs are returned unchanged.
func RepositoryURL(raw string, creds domain.Credentials) (string, []string) {
	if u, ok := bundler.ParseRepositoryURL(raw); ok && u.User != nil {
		return raw, nil
	}
	authURL, secrets, _ := bundler.WithCredentials(raw, creds)
	return authURL, secrets
}
