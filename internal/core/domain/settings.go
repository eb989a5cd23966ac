package domain

// Settings is the resolved runtime configuration.
type Settings struct {
	// BundlesDir is the root for default output directories.
	BundlesDir string
	// Tools maps an ecosystem to the binary used to drive it.
	Tools map[Ecosystem]string
	// LogFormat is "text" or "json".
	LogFormat string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Repository, Username and Password are defaults for requests that omit them.
	Repository string
	Username   string
	Password   string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		BundlesDir: DefaultBundlesDir,
		Tools:      DefaultTools(),
		LogFormat:  "text",
		LogLevel:   "info",
	}
}

// DefaultTools maps each ecosystem to its conventional binary name.
func DefaultTools() map[Ecosystem]string {
	return map[Ecosystem]string{
		EcosystemNPM:    "npm",
		EcosystemPip:    "pip",
		EcosystemNuGet:  "nuget",
		EcosystemAPK:    "apk",
		EcosystemDocker: "docker",
	}
}

// Tool returns the binary configured for an ecosystem.
func (s *Settings) Tool(eco Ecosystem) string {
	if s != nil {
		if bin, ok := s.Tools[eco]; ok && bin != "" {
			return bin
		}
	}
	return DefaultTools()[eco]
}

// Root returns the bundles directory, falling back to the default.
func (s *Settings) Root() string {
	if s == nil || s.BundlesDir == "" {
		return DefaultBundlesDir
	}
	return s.BundlesDir
}
