package ports

import "go.trai.ch/bale/internal/core/domain"

// RecordStore persists bundle records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record of the bundle at dir.
	// Returns nil, nil if not found.
	Get(dir string) (*domain.BundleRecord, error)

	// Put stores the record inside its bundle directory.
	Put(record domain.BundleRecord) error
}
