// Package bundler holds the plumbing shared by the ecosystem strategies.
package bundler

import (
	"context"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators every strategy is built from.
type Deps struct {
	Runner    ports.CommandRunner
	Logger    ports.Logger
	Workspace ports.Workspace
	Settings  *domain.Settings
}

// Base implements the parts of ports.Strategy common to all ecosystems.
type Base struct {
	Deps
	eco domain.Ecosystem
}

// NewBase creates the shared plumbing for eco.
func NewBase(eco domain.Ecosystem, deps Deps) *Base {
	if deps.Settings == nil {
		deps.Settings = domain.DefaultSettings()
	}
	return &Base{Deps: deps, eco: eco}
}

// Ecosystem returns the ecosystem the strategy serves.
func (b *Base) Ecosystem() domain.Ecosystem {
	return b.eco
}

// Tool returns the binary used to drive the ecosystem.
func (b *Base) Tool() string {
	return b.Settings.Tool(b.eco)
}

// Command builds an invocation of the ecosystem tool.
func (b *Base) Command(args ...string) domain.Command {
	return domain.Command{Name: b.Tool(), Args: args}
}

// Run executes args with the ecosystem tool, masking secrets.
func (b *Base) Run(ctx context.Context, secrets []string, args ...string) (string, error) {
	cmd := b.Command(args...)
	cmd.Secrets = secrets
	return b.Runner.Run(ctx, cmd)
}

// PrepareOutput resolves the request's output directory and makes sure it
// exists. Default directories are emptied first; explicit ones never are.
func (b *Base) PrepareOutput(req domain.BundleRequest) (string, error) {
	dir, explicit, err := domain.ResolveOutputDir(req, b.Settings.Root())
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrOutputDirFailed.Error())
	}

	if err := b.Workspace.PrepareOutputDir(dir, !explicit); err != nil {
		return "", err
	}
	return dir, nil
}

// PasswordSecrets returns the password as a secret list when credentials are complete.
func PasswordSecrets(creds domain.Credentials) []string {
	if !creds.Complete() {
		return nil
	}
	return []string{creds.Password}
}
