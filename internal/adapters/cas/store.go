// Package cas stores bundle records inside the bundles they describe.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using one JSON file per bundle.
type Store struct{}

// NewStore creates a new record store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record of the bundle at dir.
func (s *Store) Get(dir string) (*domain.BundleRecord, error) {
	filename := RecordPath(dir)
	//nolint:gosec // Path is derived from the bundle directory
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var record domain.BundleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	return &record, nil
}

// Put writes the record into record.OutputDir.
func (s *Store) Put(record domain.BundleRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := RecordPath(record.OutputDir)
	//nolint:gosec // Path is derived from the bundle directory
	if err := os.WriteFile(filename, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// RecordPath returns the record file of the bundle at dir.
func RecordPath(dir string) string {
	return filepath.Join(dir, domain.RecordFileName)
}
