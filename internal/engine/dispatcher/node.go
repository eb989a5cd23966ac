package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bale/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bale/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bale/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

// NodeID is the unique identifier for the strategy registry Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[ports.StrategyResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
			fs.WorkspaceNodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (ports.StrategyResolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewRegistry(bundler.Deps{
				Runner:    runner,
				Logger:    log,
				Workspace: workspace,
				Settings:  settings,
			}), nil
		},
	})
}
