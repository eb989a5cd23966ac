package ports

import (
	"context"

	"go.trai.ch/bale/internal/core/domain"
)

// Strategy fetches a package and its dependencies for one ecosystem.
//
//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks
type Strategy interface {
	// Ecosystem returns the ecosystem the strategy serves.
	Ecosystem() domain.Ecosystem

	// FetchBundle populates the request's output directory and returns its path.
	// Transient resources acquired along the way are released on every path.
	FetchBundle(ctx context.Context, req domain.BundleRequest) (string, error)
}

// StrategyResolver maps an ecosystem type onto its strategy.
type StrategyResolver interface {
	// Resolve looks up the strategy for ecosystemType, ignoring case.
	// Unknown types yield a *domain.UnsupportedEcosystemError.
	Resolve(ecosystemType string) (Strategy, error)

	// Types lists the supported ecosystems in a stable order.
	Types() []domain.Ecosystem
}
