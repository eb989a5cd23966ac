package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/adapters/fs"
	"go.trai.ch/bale/internal/core/domain"
)

func TestWorkspace_PrepareOutputDir(t *testing.T) {
	ws := fs.NewWorkspace(fs.NewWalker())

	t.Run("reset empties existing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "left-pad-latest-bundle")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "stale"), domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "old.tgz"), []byte("x"), domain.PrivateFilePerm))

		require.NoError(t, ws.PrepareOutputDir(dir, true))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("without reset keeps contents", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), domain.PrivateFilePerm))

		require.NoError(t, ws.PrepareOutputDir(dir, false))
		assert.FileExists(t, filepath.Join(dir, "keep.txt"))
	})

	t.Run("creates missing parents", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b", "c")
		require.NoError(t, ws.PrepareOutputDir(dir, false))
		assert.DirExists(t, dir)
	})

	t.Run("fails when a file is in the way", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), domain.PrivateFilePerm))

		err := ws.PrepareOutputDir(filepath.Join(blocker, "out"), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrOutputDirFailed.Error())
	})
}

func TestWorkspace_Scratch(t *testing.T) {
	root := t.TempDir()
	ws := fs.NewWorkspace(fs.NewWalker()).WithTempDir(root)

	dir, release, err := ws.Scratch("bale-npm-")
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, root, filepath.Dir(dir))
	assert.Contains(t, filepath.Base(dir), "bale-npm-")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".npmrc"), []byte("x"), domain.PrivateFilePerm))

	require.NoError(t, release())
	assert.NoDirExists(t, dir)
	require.NoError(t, release(), "second release is a no-op")
}

func TestWorkspace_Flatten(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	}

	write("Newtonsoft.Json.13.0.3/Newtonsoft.Json.13.0.3.nupkg", "json")
	write("Newtonsoft.Json.13.0.3/lib/net6.0/Newtonsoft.Json.dll", "dll")
	write("a/dup.nupkg", "shallow")
	write("b/deep/er/dup.nupkg", "deep")
	write("README.txt", "root file")

	ws := fs.NewWorkspace(fs.NewWalker())
	require.NoError(t, ws.Flatten(root, ".nupkg"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		assert.False(t, e.IsDir(), "no directories remain")
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Newtonsoft.Json.13.0.3.nupkg", "dup.nupkg", "README.txt"}, names)

	content, err := os.ReadFile(filepath.Join(root, "dup.nupkg"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(content), "later archive in walk order wins")
}

func TestWorkspace_Flatten_KeepsListedEntries(t *testing.T) {
	root := t.TempDir()
	write := func(rel string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(rel), domain.PrivateFilePerm))
	}

	write(".git/HEAD")
	write("src/main.go")
	write("src/vendor/old.nupkg")

	ws := fs.NewWorkspace(fs.NewWalker())
	existing, err := ws.Entries(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".git", "src"}, existing)

	write("Serilog.3.0.0/Serilog.3.0.0.nupkg")
	require.NoError(t, ws.Flatten(root, ".nupkg", existing...))

	assert.FileExists(t, filepath.Join(root, ".git", "HEAD"))
	assert.FileExists(t, filepath.Join(root, "src", "main.go"))
	assert.FileExists(t, filepath.Join(root, "src", "vendor", "old.nupkg"))
	assert.FileExists(t, filepath.Join(root, "Serilog.3.0.0.nupkg"))
	assert.NoDirExists(t, filepath.Join(root, "Serilog.3.0.0"))
	assert.NoFileExists(t, filepath.Join(root, "old.nupkg"))
}

func TestWorkspace_Entries_MissingDir(t *testing.T) {
	ws := fs.NewWorkspace(fs.NewWalker())
	got, err := ws.Entries(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
