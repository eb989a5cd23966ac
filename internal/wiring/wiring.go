// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bale/internal/adapters/cas"
	_ "go.trai.ch/bale/internal/adapters/config"
	_ "go.trai.ch/bale/internal/adapters/fs"
	_ "go.trai.ch/bale/internal/adapters/logger"
	_ "go.trai.ch/bale/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/bale/internal/app"
	_ "go.trai.ch/bale/internal/engine/dispatcher"
)
