// Package docker bundles container images as `docker save` archives.
package docker

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/distribution/reference"
	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Strategy = (*Strategy)(nil)

	schemePattern = regexp.MustCompile(`^https?://`)
)

// Strategy pulls an image and saves it to a tar archive.
type Strategy struct {
	*bundler.Base
}

// New creates the docker strategy.
func New(deps bundler.Deps) *Strategy {
	return &Strategy{Base: bundler.NewBase(domain.EcosystemDocker, deps)}
}

// RegistryHost strips the scheme and trailing slashes from a repository URL.
func RegistryHost(repository string) string {
	return strings.TrimRight(schemePattern.ReplaceAllString(repository, ""), "/")
}

// ImageReference returns the image to pull, prefixed with host unless the
// name already starts with it.
func ImageReference(req domain.BundleRequest, host string) string {
	image := req.Name + ":" + req.VersionLabel()
	if host == "" || strings.HasPrefix(req.Name, host+"/") {
		return image
	}
	return host + "/" + image
}

// ArchiveName returns the file name of the saved archive.
func ArchiveName(req domain.BundleRequest) string {
	return domain.SafeName(req.Name) + "-" + req.VersionLabel() + ".tar"
}

// FetchBundle logs in when needed, pulls the image and saves it.
func (s *Strategy) FetchBundle(ctx context.Context, req domain.BundleRequest) (string, error) {
	var host string
	if req.HasRepository() {
		host = RegistryHost(req.RepositoryURL)
	}

	ref := ImageReference(req, host)
	if _, err := reference.ParseNormalizedNamed(ref); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidImageReference.Error()), "reference", ref)
	}

	outDir, err := s.PrepareOutput(req)
	if err != nil {
		return "", err
	}

	if host != "" && req.Credentials.Complete() {
		if err := s.login(ctx, host, req.Credentials); err != nil {
			return "", err
		}
		defer s.logout(ctx, host)
	}

	s.Logger.Info(fmt.Sprintf("Pulling Docker image %s...", ref))
	pullArgs := append([]string{"pull", ref}, req.ExtraArgs...)
	if _, err := s.Run(ctx, nil, pullArgs...); err != nil {
		return "", err
	}

	archive := filepath.Join(outDir, ArchiveName(req))
	s.Logger.Info(fmt.Sprintf("Saving Docker image to %s...", archive))
	if _, err := s.Run(ctx, nil, "save", "-o", archive, ref); err != nil {
		return "", err
	}

	s.Logger.Info(fmt.Sprintf("Docker image saved as %s", archive))
	return outDir, nil
}

func (s *Strategy) login(ctx context.Context, host string, creds domain.Credentials) error {
	s.Logger.Info(fmt.Sprintf("Logging in to %s...", host))
	cmd := s.Command("login", host, "-u", creds.Username, "--password-stdin")
	cmd.Stdin = creds.Password
	cmd.Secrets = []string{creds.Password}
	_, err := s.Runner.Run(ctx, cmd)
	return err
}

func (s *Strategy) logout(ctx context.Context, host string) {
	if _, err := s.Run(context.WithoutCancel(ctx), nil, "logout", host); err != nil {
		s.Logger.Warn(fmt.Sprintf("Warning: Docker logout failed for %s. Error: %v", host, err))
	}
}
