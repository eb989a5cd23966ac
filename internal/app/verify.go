package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verify compares a bundle directory against the record written when it was
// produced.
func (a *App) Verify(_ context.Context, dir string) (*domain.VerifyReport, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "path", dir)
	}

	record, err := a.store.Get(abs)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRecordNotFound, "cannot verify bundle"), "path", abs)
	}

	current, err := a.hasher.Summarize(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSummaryFailed.Error()), "path", abs)
	}

	report := &domain.VerifyReport{
		Record:  *record,
		Current: *current,
		Missing: difference(record.Files, current.Files),
		Added:   difference(current.Files, record.Files),
	}

	if report.Intact() {
		a.logger.Success("Bundle " + abs + " matches its record")
	} else {
		a.logger.Warn("Bundle " + abs + " differs from its record")
	}
	return report, nil
}

// difference returns the entries of a missing from b, in a's order.
func difference(a, b []string) []string {
	present := make(map[string]struct{}, len(b))
	for _, s := range b {
		present[s] = struct{}{}
	}

	var out []string
	for _, s := range a {
		if _, ok := present[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
