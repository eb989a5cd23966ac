package domain

import (
	"path/filepath"
	"strings"
)

// SafeName turns a package name into something usable as a path segment.
// Every character outside [A-Za-z0-9_-] becomes '-', and leading or trailing
// separators are trimmed.
func SafeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}

	safe := strings.Trim(b.String(), "-_")
	if safe == "" {
		return FallbackSafeName
	}
	return safe
}

// DefaultOutputDir returns <root>/<safeName>-<version|latest>-bundle.
func DefaultOutputDir(root, name, version string) string {
	if root == "" {
		root = DefaultBundlesDir
	}
	if version == "" {
		version = LatestVersion
	}
	return filepath.Join(root, SafeName(name)+"-"+version+BundleDirSuffix)
}

// ResolveOutputDir returns the absolute directory a request bundles into and
// whether the caller chose it explicitly.
func ResolveOutputDir(req BundleRequest, root string) (dir string, explicit bool, err error) {
	dir = req.OutputDir
	explicit = dir != ""
	if !explicit {
		dir = DefaultOutputDir(root, req.Name, req.Version)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", explicit, err
	}
	return abs, explicit, nil
}
