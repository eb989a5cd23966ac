// Package app implements the application layer for bale.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// App orchestrates bundle requests across the ecosystem strategies.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.StrategyResolver
	logger       ports.Logger
	hasher       ports.Hasher
	store        ports.RecordStore
	settings     *domain.Settings
	now          func() time.Time
}

// New creates a new App instance. settings is shared with the strategies and
// updated in place by Configure.
func New(
	loader ports.ConfigLoader,
	resolver ports.StrategyResolver,
	logger ports.Logger,
	hasher ports.Hasher,
	store ports.RecordStore,
	settings *domain.Settings,
) *App {
	if settings == nil {
		settings = domain.DefaultSettings()
	}
	return &App{
		configLoader: loader,
		resolver:     resolver,
		logger:       logger,
		hasher:       hasher,
		store:        store,
		settings:     settings,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for durations and record timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Settings returns the active settings.
func (a *App) Settings() *domain.Settings {
	return a.settings
}

// Types lists the ecosystems that can be bundled.
func (a *App) Types() []domain.Ecosystem {
	return a.resolver.Types()
}

// LoadManifest reads a batch manifest.
func (a *App) LoadManifest(path string) (*domain.Manifest, error) {
	return a.configLoader.LoadManifest(path)
}

// ConfigOptions carries command line overrides for the loaded settings.
type ConfigOptions struct {
	File      string
	LogFormat string
	LogLevel  string
}

// Configure loads settings, applies overrides and reconfigures the logger.
func (a *App) Configure(opts ConfigOptions) error {
	loaded, err := a.configLoader.Load(opts.File)
	if err != nil {
		return err
	}

	if opts.LogFormat != "" {
		loaded.LogFormat = strings.ToLower(opts.LogFormat)
	}
	if opts.LogLevel != "" {
		loaded.LogLevel = strings.ToLower(opts.LogLevel)
	}
	if loaded.LogFormat != "text" && loaded.LogFormat != "json" {
		return zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, "invalid configuration"), "format", loaded.LogFormat)
	}

	if f, ok := a.logger.(ports.LogFormatter); ok {
		f.SetJSON(loaded.LogFormat == "json")
		if err := f.SetLevel(loaded.LogLevel); err != nil {
			return err
		}
	}

	*a.settings = *loaded
	return nil
}

// Bundle produces one offline bundle.
//
// The strategy is resolved before anything else so an unsupported type never
// reaches an external tool. Strategy errors are returned unchanged.
func (a *App) Bundle(ctx context.Context, req domain.BundleRequest) (*domain.BundleResult, error) {
	strategy, err := a.resolver.Resolve(req.Ecosystem)
	if err != nil {
		return nil, err
	}

	req, err = a.prepare(req)
	if err != nil {
		return nil, err
	}

	eco := strategy.Ecosystem()
	label := req.Name + "@" + req.VersionLabel()
	a.logIntent(eco, label, req)
	if req.Credentials.Partial() {
		a.logger.Warn(fmt.Sprintf("Incomplete credentials (missing %s), continuing without authentication.", req.Credentials.MissingPart()))
		req.Credentials = domain.Credentials{}
	}

	start := a.now()
	outDir, err := strategy.FetchBundle(ctx, req)
	if err != nil {
		return nil, err
	}

	summary, err := a.hasher.Summarize(outDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSummaryFailed.Error()), "path", outDir)
	}

	result := &domain.BundleResult{
		Ecosystem:   eco,
		Name:        req.Name,
		Version:     req.VersionLabel(),
		OutputDir:   outDir,
		Files:       summary.Files,
		TotalSize:   summary.TotalSize,
		Fingerprint: summary.Fingerprint,
		Duration:    a.now().Sub(start),
	}

	var repository string
	if req.HasRepository() {
		repository = domain.RedactURL(req.RepositoryURL)
	}
	if err := a.store.Put(domain.NewBundleRecord(result, repository, a.now())); err != nil {
		a.logger.Warn(fmt.Sprintf("Failed to write bundle record for %s: %v", outDir, err))
	}

	a.logger.Success(fmt.Sprintf("Successfully bundled %s", label))
	return result, nil
}

// prepare validates req and fills unset repository and credential fields
// from the settings.
func (a *App) prepare(req domain.BundleRequest) (domain.BundleRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, domain.ErrMissingPackageName
	}

	if req.RepositoryURL == "" {
		req.RepositoryURL = a.settings.Repository
	}
	if req.Credentials.Username == "" {
		req.Credentials.Username = a.settings.Username
	}
	if req.Credentials.Password == "" {
		req.Credentials.Password = a.settings.Password
	}
	return req, nil
}

func (a *App) logIntent(eco domain.Ecosystem, label string, req domain.BundleRequest) {
	a.logger.Info(fmt.Sprintf("Bundling %s package: %s...", eco, label))
	if len(req.ExtraArgs) > 0 {
		a.logger.Info("Extra arguments: " + strings.Join(req.ExtraArgs, " "))
	}
	if req.HasRepository() {
		a.logger.Info("Using repository: " + domain.RedactURL(req.RepositoryURL))
	}
}
