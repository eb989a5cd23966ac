// Package npm bundles npm packages as a flat directory of tarballs.
package npm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// ScratchPrefix prefixes the temporary install directory.
const ScratchPrefix = "bale-npm-"

var _ ports.Strategy = (*Strategy)(nil)

// Strategy installs the package into a scratch prefix to resolve its
// dependency tree, then packs every installed package into the output directory.
type Strategy struct {
	*bundler.Base
}

// New creates the npm strategy.
func New(deps bundler.Deps) *Strategy {
	return &Strategy{Base: bundler.NewBase(domain.EcosystemNPM, deps)}
}

// PackageSpec returns name@version, or name when no version is requested.
func PackageSpec(req domain.BundleRequest) string {
	if req.Version == "" {
		return req.Name
	}
	return req.Name + "@" + req.Version
}

// RenderNpmrc returns the registry configuration for a custom repository.
// Credentials are added as basic auth only when complete.
func RenderNpmrc(repository string, creds domain.Credentials) string {
	var b strings.Builder
	b.WriteString("registry=" + repository + "\n")
	if creds.Complete() {
		b.WriteString("_auth=" + basicAuth(creds) + "\n")
		b.WriteString("always-auth=true\n")
	}
	return b.String()
}

func basicAuth(creds domain.Credentials) string {
	return base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
}

// FetchBundle installs into a scratch workspace and packs the result.
func (s *Strategy) FetchBundle(ctx context.Context, req domain.BundleRequest) (outDir string, err error) {
	outDir, err = s.PrepareOutput(req)
	if err != nil {
		return "", err
	}

	scratch, release, err := s.Workspace.Scratch(ScratchPrefix)
	if err != nil {
		return "", err
	}
	defer func() {
		if relErr := release(); relErr != nil {
			s.Logger.Warn(fmt.Sprintf("Failed to remove temporary directory %s: %v", scratch, relErr))
		}
	}()

	spec := PackageSpec(req)
	s.Logger.Info(fmt.Sprintf("Installing %s to temporary directory...", spec))

	args := []string{"install", "--prefix", scratch, spec, "--ignore-scripts", "--no-bin-links"}
	args = append(args, req.ExtraArgs...)

	var secrets []string
	if req.HasRepository() {
		npmrc := filepath.Join(scratch, ".npmrc")
		content := RenderNpmrc(req.RepositoryURL, req.Credentials)
		if err := os.WriteFile(npmrc, []byte(content), domain.PrivateFilePerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrWorkspaceWriteFailed.Error()), "path", npmrc)
		}
		args = append(args, "--userconfig", npmrc)
		if secrets = bundler.PasswordSecrets(req.Credentials); secrets != nil {
			secrets = append(secrets, basicAuth(req.Credentials))
		}
	}

	if _, err := s.Run(ctx, secrets, args...); err != nil {
		return "", err
	}

	packages, err := InstalledPackages(filepath.Join(scratch, "node_modules"))
	if err != nil {
		return "", err
	}
	if packages == nil {
		s.Logger.Warn("No node_modules found. This might be a single package with no dependencies or an error occurred.")
	} else {
		s.Logger.Info(fmt.Sprintf("Packing dependencies to %s...", outDir))
	}

	for _, pkg := range packages {
		packArgs := []string{"pack", pkg, "--pack-destination", outDir, "--ignore-scripts"}
		packArgs = append(packArgs, req.ExtraArgs...)
		if _, err := s.Run(ctx, nil, packArgs...); err != nil {
			return "", err
		}
	}

	s.Logger.Info(fmt.Sprintf("Offline npm bundle for %s is ready in %s", spec, outDir))
	return outDir, nil
}

// InstalledPackages lists the package directories of a node_modules tree in
// name order. Hidden entries and plain files are skipped; @scope directories
// contribute their nested packages. A missing tree yields nil.
func InstalledPackages(nodeModules string) ([]string, error) {
	entries, err := os.ReadDir(nodeModules)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListDirFailed.Error()), "path", nodeModules)
	}

	packages := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !isDir(nodeModules, entry) {
			continue
		}

		path := filepath.Join(nodeModules, name)
		if !strings.HasPrefix(name, "@") {
			packages = append(packages, path)
			continue
		}

		scoped, err := os.ReadDir(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrListDirFailed.Error()), "path", path)
		}
		for _, nested := range scoped {
			if strings.HasPrefix(nested.Name(), ".") || !isDir(path, nested) {
				continue
			}
			packages = append(packages, filepath.Join(path, nested.Name()))
		}
	}

	return packages, nil
}

// isDir follows symlinks, which npm uses for workspace and linked packages.
func isDir(parent string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
