package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BatchOptions controls how a manifest is processed.
type BatchOptions struct {
	// Jobs bounds the number of bundles produced concurrently. Values below
	// one mean sequential processing.
	Jobs int
	// FailFast cancels the remaining entries after the first failure.
	FailFast bool
}

// BundleBatch bundles every manifest entry and returns the successful results
// in manifest order. Entries are validated up front: an unsupported type or
// two entries sharing an output directory fail the batch before any tool runs.
func (a *App) BundleBatch(ctx context.Context, manifest *domain.Manifest, opts BatchOptions) ([]*domain.BundleResult, error) {
	requests, err := a.planBatch(manifest)
	if err != nil {
		return nil, err
	}

	jobs := max(opts.Jobs, 1)

	var g *errgroup.Group
	runCtx := ctx
	if opts.FailFast {
		g, runCtx = errgroup.WithContext(ctx)
	} else {
		g = &errgroup.Group{}
	}
	g.SetLimit(jobs)

	results := make([]*domain.BundleResult, len(requests))
	errs := make([]error, len(requests))
	for i, req := range requests {
		g.Go(func() error {
			if runCtx.Err() != nil {
				a.logger.Debug(fmt.Sprintf("Skipping %s: batch cancelled", req.Name))
				return nil
			}

			res, err := a.Bundle(runCtx, req)
			if err != nil {
				errs[i] = zerr.With(err, "bundle", req.Name)
				if opts.FailFast {
					return errs[i]
				}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	succeeded := make([]*domain.BundleResult, 0, len(results))
	for _, res := range results {
		if res != nil {
			succeeded = append(succeeded, res)
		}
	}

	if joined := errors.Join(errs...); joined != nil {
		failed := len(requests) - len(succeeded)
		return succeeded, zerr.With(zerr.Wrap(joined, domain.ErrBatchFailed.Error()), "failed", failed)
	}
	return succeeded, nil
}

// planBatch converts the manifest into requests and rejects entries that
// cannot run together.
func (a *App) planBatch(manifest *domain.Manifest) ([]domain.BundleRequest, error) {
	if manifest == nil || len(manifest.Bundles) == 0 {
		return nil, domain.ErrManifestEmpty
	}

	requests := make([]domain.BundleRequest, 0, len(manifest.Bundles))
	seen := make(map[string]string, len(manifest.Bundles))
	for _, entry := range manifest.Bundles {
		req := entry.Request()
		if _, err := a.resolver.Resolve(req.Ecosystem); err != nil {
			return nil, zerr.With(err, "bundle", req.Name)
		}

		dir, _, err := domain.ResolveOutputDir(req, a.settings.Root())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputDirFailed.Error()), "bundle", req.Name)
		}
		if other, ok := seen[dir]; ok {
			err := zerr.Wrap(domain.ErrDuplicateOutputDir, "invalid batch manifest")
			return nil, zerr.With(zerr.With(err, "path", dir), "bundles", other+", "+req.Name)
		}
		seen[dir] = req.Name
		requests = append(requests, req)
	}
	return requests, nil
}
