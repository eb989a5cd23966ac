package config

// manifestFile represents the structure of a batch manifest on disk.
type manifestFile struct {
	Bundles []bundleDTO `yaml:"bundles"`
}

// bundleDTO represents one bundle entry in the manifest.
type bundleDTO struct {
	Name       string   `yaml:"name"`
	Version    string   `yaml:"version"`
	Type       string   `yaml:"type"`
	Repository string   `yaml:"repository"`
	Output     string   `yaml:"output"`
	Args       []string `yaml:"args"`
}
