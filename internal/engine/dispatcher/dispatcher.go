// Package dispatcher maps ecosystem type strings to bundling strategies.
package dispatcher

import (
	"go.trai.ch/bale/internal/adapters/apk"    //nolint:depguard // Strategies are registered here
	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/adapters/docker" //nolint:depguard // Strategies are registered here
	"go.trai.ch/bale/internal/adapters/npm"    //nolint:depguard // Strategies are registered here
	"go.trai.ch/bale/internal/adapters/nuget"  //nolint:depguard // Strategies are registered here
	"go.trai.ch/bale/internal/adapters/pip"    //nolint:depguard // Strategies are registered here
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

var _ ports.StrategyResolver = (*Registry)(nil)

// Registry resolves an ecosystem to its strategy. It is immutable once built.
type Registry struct {
	strategies map[domain.Ecosystem]ports.Strategy
}

// NewRegistry builds the registry of every supported ecosystem.
func NewRegistry(deps bundler.Deps) *Registry {
	return NewRegistryFrom(
		npm.New(deps),
		pip.New(deps),
		nuget.New(deps),
		apk.New(deps),
		docker.New(deps),
	)
}

// NewRegistryFrom builds a registry from explicit strategies. A later
// strategy for the same ecosystem replaces an earlier one.
func NewRegistryFrom(strategies ...ports.Strategy) *Registry {
	r := &Registry{strategies: make(map[domain.Ecosystem]ports.Strategy, len(strategies))}
	for _, s := range strategies {
		r.strategies[s.Ecosystem()] = s
	}
	return r
}

// Resolve returns the strategy for a case-insensitive type string.
func (r *Registry) Resolve(typ string) (ports.Strategy, error) {
	eco, err := domain.ParseEcosystem(typ)
	if err != nil {
		return nil, &domain.UnsupportedEcosystemError{Requested: typ, Supported: r.Types()}
	}

	s, ok := r.strategies[eco]
	if !ok {
		return nil, &domain.UnsupportedEcosystemError{Requested: typ, Supported: r.Types()}
	}
	return s, nil
}

// Types lists the registered ecosystems in the canonical order.
func (r *Registry) Types() []domain.Ecosystem {
	types := make([]domain.Ecosystem, 0, len(r.strategies))
	for _, eco := range domain.Ecosystems() {
		if _, ok := r.strategies[eco]; ok {
			types = append(types, eco)
		}
	}
	return types
}
