// Package config loads runtime settings and batch manifests.
package config

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader with viper and yaml.v3.
type Loader struct {
	searchPaths []string
}

// NewLoader creates a Loader that searches the working and home directories.
func NewLoader() *Loader {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return &Loader{searchPaths: paths}
}

// WithSearchPaths replaces the directories searched for the config file.
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.searchPaths = paths
	return l
}

// Load resolves settings from defaults, the config file and BALE_* variables.
// An explicit path must exist; a missing discovered file is not an error.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	v := viper.New()

	defaults := domain.DefaultSettings()
	v.SetDefault("bundles_dir", defaults.BundlesDir)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("repository", "")
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	for eco, bin := range defaults.Tools {
		v.SetDefault("tools."+eco.String(), bin)
	}

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := l.readConfig(v, path); err != nil {
		return nil, err
	}

	settings := &domain.Settings{
		BundlesDir: v.GetString("bundles_dir"),
		LogFormat:  strings.ToLower(v.GetString("log_format")),
		LogLevel:   strings.ToLower(v.GetString("log_level")),
		Repository: v.GetString("repository"),
		Username:   v.GetString("username"),
		Password:   v.GetString("password"),
		Tools:      make(map[domain.Ecosystem]string, len(defaults.Tools)),
	}
	for _, eco := range domain.Ecosystems() {
		settings.Tools[eco] = v.GetString("tools." + eco.String())
	}

	return settings, nil
}

func (l *Loader) readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return nil
	}

	v.SetConfigName(domain.ConfigFileName)
	v.SetConfigType("yaml")
	for _, dir := range l.searchPaths {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return nil
}

// LoadManifest reads and validates a batch manifest.
func (l *Loader) LoadManifest(path string) (*domain.Manifest, error) {
	//nolint:gosec // Manifest path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var file manifestFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	if len(file.Bundles) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestEmpty, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	manifest := &domain.Manifest{Bundles: make([]domain.ManifestEntry, 0, len(file.Bundles))}
	for i, b := range file.Bundles {
		if strings.TrimSpace(b.Name) == "" {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingPackageName, domain.ErrManifestParseFailed.Error()), "path", path), "entry", i+1)
		}
		manifest.Bundles = append(manifest.Bundles, domain.ManifestEntry{
			Name:       b.Name,
			Version:    b.Version,
			Type:       b.Type,
			Repository: b.Repository,
			Output:     b.Output,
			Args:       b.Args,
		})
	}

	return manifest, nil
}
