package docker_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/adapters/bundler"
	"go.trai.ch/bale/internal/adapters/docker"
	"go.trai.ch/bale/internal/adapters/fs"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*docker.Strategy, *mocks.MockCommandRunner, *mocks.MockLogger, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	root := t.TempDir()
	settings := domain.DefaultSettings()
	settings.BundlesDir = root

	s := docker.New(bundler.Deps{
		Runner:    runner,
		Logger:    log,
		Workspace: fs.NewWorkspace(fs.NewWalker()),
		Settings:  settings,
	})
	return s, runner, log, root
}

func TestRegistryHost(t *testing.T) {
	assert.Equal(t, "registry.local:5000", docker.RegistryHost("https://registry.local:5000/"))
	assert.Equal(t, "registry.local", docker.RegistryHost("http://registry.local"))
	assert.Equal(t, "registry.local/team", docker.RegistryHost("registry.local/team//"))
}

func TestImageReference(t *testing.T) {
	tests := []struct {
		name string
		req  domain.BundleRequest
		host string
		want string
	}{
		{"no registry", domain.BundleRequest{Name: "nginx", Version: "1.25"}, "", "nginx:1.25"},
		{"latest", domain.BundleRequest{Name: "nginx"}, "", "nginx:latest"},
		{"prefixed", domain.BundleRequest{Name: "library/nginx"}, "registry.local", "registry.local/library/nginx:latest"},
		{"already prefixed", domain.BundleRequest{Name: "registry.local/nginx", Version: "1"}, "registry.local", "registry.local/nginx:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docker.ImageReference(tt.req, tt.host))
		})
	}
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "library-nginx-1.25.tar", docker.ArchiveName(domain.BundleRequest{Name: "library/nginx", Version: "1.25"}))
	assert.Equal(t, "redis-latest.tar", docker.ArchiveName(domain.BundleRequest{Name: "redis"}))
}

func TestStrategy_FetchBundle_PublicImage(t *testing.T) {
	s, runner, _, root := setup(t)
	outDir := filepath.Join(root, "nginx-1.25-bundle")

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"pull", "nginx:1.25", "--platform", "linux/amd64"},
		}).Return("", nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"save", "-o", filepath.Join(outDir, "nginx-1.25.tar"), "nginx:1.25"},
		}).Return("", nil),
	)

	got, err := s.FetchBundle(context.Background(), domain.BundleRequest{
		Name:      "nginx",
		Version:   "1.25",
		ExtraArgs: []string{"--platform", "linux/amd64"},
	})
	require.NoError(t, err)
	assert.Equal(t, outDir, got)
}

func TestStrategy_FetchBundle_PrivateRegistry(t *testing.T) {
	s, runner, _, root := setup(t)
	outDir := filepath.Join(root, "app-2.0-bundle")
	ref := "registry.local:5000/app:2.0"

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name:    "docker",
			Args:    []string{"login", "registry.local:5000", "-u", "ci", "--password-stdin"},
			Stdin:   "s3cret",
			Secrets: []string{"s3cret"},
		}).Return("Login Succeeded", nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"pull", ref},
		}).Return("", nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"save", "-o", filepath.Join(outDir, "app-2.0.tar"), ref},
		}).Return("", nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"logout", "registry.local:5000"},
		}).Return("", nil),
	)

	_, err := s.FetchBundle(context.Background(), domain.BundleRequest{
		Name:          "app",
		Version:       "2.0",
		RepositoryURL: "https://registry.local:5000/",
		Credentials:   domain.Credentials{Username: "ci", Password: "s3cret"},
	})
	require.NoError(t, err)
}

func TestStrategy_FetchBundle_PullFailureStillLogsOut(t *testing.T) {
	s, runner, log, _ := setup(t)

	toolErr := domain.NewExternalToolError(domain.Command{Name: "docker"}, 1, "manifest unknown", errors.New("exit status 1"))
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", nil),
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", toolErr),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"logout", "registry.local"},
		}).Return("", errors.New("not logged in")),
	)
	log.EXPECT().Warn("Warning: Docker logout failed for registry.local. Error: not logged in")

	_, err := s.FetchBundle(context.Background(), domain.BundleRequest{
		Name:          "app",
		RepositoryURL: "registry.local",
		Credentials:   domain.Credentials{Username: "ci", Password: "s3cret"},
	})
	require.Error(t, err)
	assert.Same(t, toolErr, err)
}

func TestStrategy_FetchBundle_LoginFailureSkipsLogout(t *testing.T) {
	s, runner, _, _ := setup(t)

	toolErr := domain.NewExternalToolError(domain.Command{Name: "docker"}, 1, "unauthorized", errors.New("exit status 1"))
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", toolErr)

	_, err := s.FetchBundle(context.Background(), domain.BundleRequest{
		Name:          "app",
		RepositoryURL: "https://registry.local",
		Credentials:   domain.Credentials{Username: "ci", Password: "wrong"},
	})
	assert.ErrorIs(t, err, domain.ErrExternalTool)
}

func TestStrategy_FetchBundle_InvalidReference(t *testing.T) {
	s, _, _, root := setup(t)

	_, err := s.FetchBundle(context.Background(), domain.BundleRequest{Name: "Invalid/UPPER"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidImageReference.Error())
	assert.NoDirExists(t, filepath.Join(root, "Invalid-UPPER-latest-bundle"))
}
