// Package nuget bundles NuGet packages as a flat folder of .nupkg files.
package nuget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

// PackageExt is the extension kept when flattening the install tree.
const PackageExt = ".nupkg"

var _ ports.Strategy = (*Strategy)(nil)

// Strategy installs a package tree with `nuget install` and flattens it.
type Strategy struct {
	*bundler.Base
	sourceName func() string
}

// New creates the nuget strategy.
func New(deps bundler.Deps) *Strategy {
	return &Strategy{
		Base:       bundler.NewBase(domain.EcosystemNuGet, deps),
		sourceName: SourceName,
	}
}

// WithSourceNamer replaces the temporary source name generator.
func (s *Strategy) WithSourceNamer(fn func() string) *Strategy {
	s.sourceName = fn
	return s
}

// SourceName returns a unique name for a temporary package source.
func SourceName() string {
	id := uuid.New()
	return fmt.Sprintf("BaleSource_%d_%s", time.Now().UnixMilli(), id.String()[:8])
}

// FetchBundle registers an optional temporary source, installs and flattens.
func (s *Strategy) FetchBundle(ctx context.Context, req domain.BundleRequest) (string, error) {
	outDir, err := s.PrepareOutput(req)
	if err != nil {
		return "", err
	}

	// An explicit output directory may hold unrelated files; only what the
	// install adds is flattened.
	existing, err := s.Workspace.Entries(outDir)
	if err != nil {
		return "", err
	}

	s.Logger.Info(fmt.Sprintf("Installing %s %s and dependencies...", req.Name, req.VersionLabel()))

	var source string
	if req.HasRepository() {
		source = s.addSource(ctx, req)
	}
	if source != "" {
		defer s.removeSource(ctx, source)
	}

	args := []string{"install", req.Name, "-OutputDirectory", outDir, "-DependencyVersion", "Highest"}
	if req.Version != "" {
		args = append(args, "-Version", req.Version)
	}
	if source != "" {
		args = append(args, "-Source", source)
	}
	args = append(args, req.ExtraArgs...)

	if _, err := s.Run(ctx, nil, args...); err != nil {
		return "", err
	}

	s.Logger.Info("Flattening package structure...")
	if err := s.Workspace.Flatten(outDir, PackageExt, existing...); err != nil {
		return "", err
	}

	s.Logger.Info(fmt.Sprintf("NuGet bundle ready in %s (flat folder with .nupkg only)", outDir))
	return outDir, nil
}

// addSource registers the repository and returns its name, or "" when
// registration failed and ambient sources should be used.
func (s *Strategy) addSource(ctx context.Context, req domain.BundleRequest) string {
	name := s.sourceName()
	args := []string{"sources", "Add", "-Name", name, "-Source", req.RepositoryURL}
	if req.Credentials.Complete() {
		args = append(args, "-Username", req.Credentials.Username, "-Password", req.Credentials.Password)
	}

	if _, err := s.Run(ctx, bundler.PasswordSecrets(req.Credentials), args...); err != nil {
		s.Logger.Warn(fmt.Sprintf("Failed to add temporary source: %v", err))
		return ""
	}
	return name
}

func (s *Strategy) removeSource(ctx context.Context, name string) {
	// Deregistration must run even when the bundle was interrupted.
	ctx = context.WithoutCancel(ctx)
	if _, err := s.Run(ctx, nil, "sources", "Remove", "-Name", name); err != nil {
		s.Logger.Debug(fmt.Sprintf("Failed to remove temporary source %s: %v", name, err))
	}
}
