package ports

import "go.trai.ch/bale/internal/core/domain"

// ConfigLoader defines the interface for loading runtime settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings from defaults, the config file and the environment.
	// An empty path searches the working and home directories.
	Load(path string) (*domain.Settings, error)

	// LoadManifest reads a batch manifest.
	LoadManifest(path string) (*domain.Manifest, error)
}
