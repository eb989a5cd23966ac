package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir2"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte("content1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir1", "file2.txt"), []byte("content2"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir2", "file3.txt"), []byte("content3"), 0o600))

	walker := fs.NewWalker()
	files := make([]string, 0)

	for filePath, err := range walker.WalkFiles(tmpDir, nil) {
		require.NoError(t, err)
		files = append(files, filePath)
	}

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "dir1", "file2.txt"),
		filepath.Join(tmpDir, "dir2", "file3.txt"),
		filepath.Join(tmpDir, "file1.txt"),
	}, files)
}

func TestWalker_WalkFiles_Ignores(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".cache"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".cache", "entry"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "keep.tgz"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "skip.log"), []byte("x"), 0o600))

	var files []string
	for filePath, err := range fs.NewWalker().WalkFiles(tmpDir, []string{".*", "*.log"}) {
		require.NoError(t, err)
		files = append(files, filepath.Base(filePath))
	}

	assert.Equal(t, []string{"keep.tgz"}, files)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var gotErr error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		gotErr = err
	}
	require.Error(t, gotErr)
}
