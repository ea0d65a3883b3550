package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/opt/operator-gui")
	assert.Equal(t, "/opt/operator-gui", p.Root)
	assert.Equal(t, filepath.Join("/opt/operator-gui", "frontend"), p.Frontend)
	assert.Equal(t, filepath.Join("/opt/operator-gui", "frontend", "index.html"), p.Page)
}

func TestInstallRoot(t *testing.T) {
	root := InstallRoot()
	assert.True(t, filepath.IsAbs(root), "install root should be absolute, got %s", root)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPageExists(t *testing.T) {
	dir := t.TempDir()
	p := NewPaths(dir)
	assert.False(t, PageExists(p.Page))

	require.NoError(t, os.MkdirAll(p.Frontend, 0755))
	assert.False(t, PageExists(p.Page))
	assert.False(t, PageExists(p.Frontend), "a directory is not a page")

	require.NoError(t, os.WriteFile(p.Page, []byte("<html></html>"), 0644))
	assert.True(t, PageExists(p.Page))
}
