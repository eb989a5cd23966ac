package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakePip = `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "--dest" ]; then shift; dest="$1"; fi
  shift
done
echo wheel > "$dest/requests-2.31.0-py3-none-any.whl"
`

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name:         "types",
			args:         []string{"types"},
			expectedExit: 0,
		},
		{
			name:         "unsupported type",
			args:         []string{"bundle", "junit", "-t", "maven"},
			expectedExit: 1,
		},
		{
			name:         "missing explicit config",
			args:         []string{"--config", "nonexistent.yaml", "types"},
			expectedExit: 1,
		},
		{
			name:         "bundle with fake pip",
			args:         []string{"bundle", "requests", "-v", "2.31.0", "-t", "pip"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)
			t.Setenv("HOME", tmpDir)
			t.Setenv("NO_COLOR", "1")

			bin := filepath.Join(tmpDir, "bin")
			require.NoError(t, os.MkdirAll(bin, 0o750))
			//nolint:gosec // Test helper must be executable
			require.NoError(t, os.WriteFile(filepath.Join(bin, "pip"), []byte(fakePip), 0o755))
			t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

			exitCode := run(tt.args)
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_BundleWritesRecord(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("HOME", tmpDir)

	bin := filepath.Join(tmpDir, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o750))
	//nolint:gosec // Test helper must be executable
	require.NoError(t, os.WriteFile(filepath.Join(bin, "pip"), []byte(fakePip), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	require.Equal(t, 0, run([]string{"bundle", "requests", "-v", "2.31.0", "-t", "pip"}))

	outDir := filepath.Join(tmpDir, "bundles", "requests-2.31.0-bundle")
	assert.FileExists(t, filepath.Join(outDir, "requests-2.31.0-py3-none-any.whl"))
	assert.FileExists(t, filepath.Join(outDir, ".bale.json"))

	assert.Equal(t, 0, run([]string{"verify", outDir}))
}
