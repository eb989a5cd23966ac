package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/adapters/config"
	"go.trai.ch/bale/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := config.NewLoader().WithSearchPaths(t.TempDir())

	settings, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBundlesDir, settings.BundlesDir)
	assert.Equal(t, "text", settings.LogFormat)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, domain.DefaultTools(), settings.Tools)
	assert.Empty(t, settings.Password)
}

func TestLoader_Load_DiscoveredFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".bale.yaml", `
bundles_dir: /srv/offline
log_format: JSON
tools:
  pip: pip3
repository: https://nexus.local/repository/pypi/simple
`)

	settings, err := config.NewLoader().WithSearchPaths(dir).Load("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/offline", settings.BundlesDir)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, "pip3", settings.Tool(domain.EcosystemPip))
	assert.Equal(t, "npm", settings.Tool(domain.EcosystemNPM))
	assert.Equal(t, "https://nexus.local/repository/pypi/simple", settings.Repository)
}

func TestLoader_Load_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".bale.yaml", "bundles_dir: from-file\n")

	t.Setenv("BALE_BUNDLES_DIR", "from-env")
	t.Setenv("BALE_TOOLS_DOCKER", "podman")
	t.Setenv("BALE_USERNAME", "ci")
	t.Setenv("BALE_PASSWORD", "token")

	settings, err := config.NewLoader().WithSearchPaths(dir).Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", settings.BundlesDir)
	assert.Equal(t, "podman", settings.Tool(domain.EcosystemDocker))
	assert.Equal(t, "ci", settings.Username)
	assert.Equal(t, "token", settings.Password)
}

func TestLoader_Load_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "log_level: debug\n")

	settings, err := config.NewLoader().WithSearchPaths(t.TempDir()).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoader_Load_ExplicitFileMissing(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".bale.yaml", "tools: [unterminated\n")

	_, err := config.NewLoader().WithSearchPaths(dir).Load("")
	require.Error(t, err)
}

func TestLoader_LoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, domain.ManifestFileName, `
bundles:
  - name: left-pad
    version: 1.3.0
    type: npm
  - name: nginx
    type: docker
    repository: https://registry.local
    output: images/nginx
    args: ["--platform", "linux/amd64"]
`)

	manifest, err := config.NewLoader().LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, manifest.Bundles, 2)

	assert.Equal(t, domain.ManifestEntry{Name: "left-pad", Version: "1.3.0", Type: "npm"}, manifest.Bundles[0])

	req := manifest.Bundles[1].Request()
	assert.Equal(t, "nginx", req.Name)
	assert.Equal(t, "docker", req.Ecosystem)
	assert.Equal(t, "https://registry.local", req.RepositoryURL)
	assert.Equal(t, "images/nginx", req.OutputDir)
	assert.Equal(t, []string{"--platform", "linux/amd64"}, req.ExtraArgs)
}

func TestLoader_LoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty",
			content: "bundles: []\n",
			wantErr: domain.ErrManifestEmpty.Error(),
		},
		{
			name:    "unknown field",
			content: "bundles:\n  - name: x\n    type: npm\n    password: nope\n",
			wantErr: domain.ErrManifestParseFailed.Error(),
		},
		{
			name:    "missing name",
			content: "bundles:\n  - type: npm\n",
			wantErr: domain.ErrMissingPackageName.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bundles.yaml", tt.content)

			_, err := config.NewLoader().LoadManifest(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_LoadManifest_Missing(t *testing.T) {
	_, err := config.NewLoader().LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrManifestReadFailed.Error())
}
