package domain

import "time"

// BundleResult summarizes a successfully populated bundle directory.
type BundleResult struct {
	Ecosystem   Ecosystem
	Name        string
	Version     string
	OutputDir   string
	Files       []string
	TotalSize   int64
	Fingerprint string
	Duration    time.Duration
}

// BundleRecord is persisted inside a bundle so it can be verified after transfer.
// It never carries credentials.
type BundleRecord struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Ecosystem   Ecosystem `json:"ecosystem"`
	Repository  string    `json:"repository,omitempty"`
	OutputDir   string    `json:"output_dir"`
	Files       []string  `json:"files"`
	TotalSize   int64     `json:"total_size"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBundleRecord builds the persisted form of a result.
// The repository must already be redacted.
func NewBundleRecord(res *BundleResult, repository string, createdAt time.Time) BundleRecord {
	return BundleRecord{
		Name:        res.Name,
		Version:     res.Version,
		Ecosystem:   res.Ecosystem,
		Repository:  repository,
		OutputDir:   res.OutputDir,
		Files:       res.Files,
		TotalSize:   res.TotalSize,
		Fingerprint: res.Fingerprint,
		CreatedAt:   createdAt.UTC(),
	}
}

// DirSummary describes the contents of a directory tree.
type DirSummary struct {
	Files       []string
	TotalSize   int64
	Fingerprint string
}

// VerifyReport is the outcome of comparing a bundle against its record.
type VerifyReport struct {
	Record  BundleRecord
	Current DirSummary
	Missing []string
	Added   []string
}

// Intact reports whether the bundle still matches its record.
func (r *VerifyReport) Intact() bool {
	return r.Current.Fingerprint == r.Record.Fingerprint && len(r.Missing) == 0 && len(r.Added) == 0
}
