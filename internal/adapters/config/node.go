package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the shared settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// Settings start at their defaults and are filled in by the app once the
	// command line is parsed. Every consumer shares the same pointer.
	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Settings, error) {
			return domain.DefaultSettings(), nil
		},
	})
}
