package ports

import "go.trai.ch/bale/internal/core/domain"

// Hasher summarizes bundle directories.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Summarize lists the files below dir with their total size and a
	// content fingerprint that is stable across machines.
	Summarize(dir string) (*domain.DirSummary, error)
}
