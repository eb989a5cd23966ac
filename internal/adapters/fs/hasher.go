package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints bundle directories.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content and returns its size.
func (h *Hasher) ComputeFileHash(path string) (sum uint64, size int64, err error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the bundle directory
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	size, err = io.Copy(digest, f)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return digest.Sum64(), size, nil
}

// Summarize lists the files below dir as sorted slash-separated relative
// paths and folds each path and content hash into one fingerprint. The
// bundle's own record file is not part of the summary.
func (h *Hasher) Summarize(dir string) (*domain.DirSummary, error) {
	var files []string
	for path, err := range h.walker.WalkFiles(dir, nil) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrListDirFailed.Error()), "path", dir)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrListDirFailed.Error()), "path", path)
		}
		if rel == domain.RecordFileName {
			continue
		}
		files = append(files, filepath.ToSlash(rel))
	}
	slices.Sort(files)

	digest := xxhash.New()
	summary := &domain.DirSummary{Files: files}
	if summary.Files == nil {
		summary.Files = []string{}
	}

	for _, rel := range files {
		sum, size, err := h.ComputeFileHash(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}

		_, _ = digest.WriteString(rel)
		_, _ = digest.Write([]byte{0}) // Separator
		_, _ = digest.Write(binary.LittleEndian.AppendUint64(nil, sum))
		summary.TotalSize += size
	}

	summary.Fingerprint = fmt.Sprintf("%016x", digest.Sum64())
	return summary, nil
}
