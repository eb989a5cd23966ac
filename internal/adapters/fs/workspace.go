package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local file system.
type Workspace struct {
	walker  *Walker
	tempDir string
}

// NewWorkspace creates a Workspace placing scratch directories in the OS temp dir.
func NewWorkspace(walker *Walker) *Workspace {
	return &Workspace{walker: walker}
}

// WithTempDir places scratch directories below dir instead of the OS temp dir.
func (w *Workspace) WithTempDir(dir string) *Workspace {
	w.tempDir = dir
	return w
}

// PrepareOutputDir ensures dir exists, removing previous contents when reset is set.
func (w *Workspace) PrepareOutputDir(dir string, reset bool) error {
	if reset {
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "path", dir)
		}
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "path", dir)
	}
	return nil
}

// Scratch creates a private temporary directory and its release function.
// Releasing more than once is a no-op.
func (w *Workspace) Scratch(prefix string) (string, func() error, error) {
	dir, err := os.MkdirTemp(w.tempDir, prefix+"*")
	if err != nil {
		return "", nil, zerr.Wrap(err, domain.ErrWorkspaceCreateFailed.Error())
	}

	var once sync.Once
	release := func() error {
		var rmErr error
		once.Do(func() {
			if err := os.RemoveAll(dir); err != nil {
				rmErr = zerr.With(zerr.Wrap(err, "failed to remove scratch workspace"), "path", dir)
			}
		})
		return rmErr
	}

	return dir, release, nil
}

// Entries returns the names of the top-level entries of dir. A missing
// directory has no entries.
func (w *Workspace) Entries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListDirFailed.Error()), "path", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Flatten moves every file with extension ext found in the subdirectories of
// root into root, overwriting name collisions in walk order, then removes
// those subdirectories. Top-level entries named in keep are left untouched.
func (w *Workspace) Flatten(root, ext string, keep ...string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrListDirFailed.Error()), "path", root)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && !slices.Contains(keep, entry.Name()) {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}

	var nested []string
	for _, dir := range dirs {
		for path, err := range w.walker.WalkFiles(dir, nil) {
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrFlattenFailed.Error()), "path", dir)
			}
			if strings.EqualFold(filepath.Ext(path), ext) {
				nested = append(nested, path)
			}
		}
	}

	for _, src := range nested {
		dst := filepath.Join(root, filepath.Base(src))
		if err := os.Rename(src, dst); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFlattenFailed.Error()), "path", src)
		}
	}

	var errs []error
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return zerr.With(zerr.Wrap(errors.Join(errs...), domain.ErrFlattenFailed.Error()), "path", root)
	}

	return nil
}
