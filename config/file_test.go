package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTempXDGConfigHome points XDG_CONFIG_HOME at a fresh temp dir and
// reloads adrg/xdg's cached base directories, since they are normally
// resolved once at process start.
func withTempXDGConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	old, hadOld := os.LookupEnv("XDG_CONFIG_HOME")
	require.NoError(t, os.Setenv("XDG_CONFIG_HOME", tmpDir))
	xdg.Reload()
	t.Cleanup(func() {
		if hadOld {
			os.Setenv("XDG_CONFIG_HOME", old)
		} else {
			os.Unsetenv("XDG_CONFIG_HOME")
		}
		xdg.Reload()
	})
	return tmpDir
}

func TestLoadOrCreateWritesDefaultWhenMissing(t *testing.T) {
	tmpDir := withTempXDGConfigHome(t)

	cfg, err := LoadOrCreate(false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(filepath.Join(tmpDir, "oplcore", "config.yaml"))
	assert.NoError(t, err)
}

func TestLoadOrCreateLoadsExistingOverlay(t *testing.T) {
	tmpDir := withTempXDGConfigHome(t)

	dir := filepath.Join(tmpDir, "oplcore")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("pageSize: 50\n"), 0o644))

	cfg, err := LoadOrCreate(false)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, Default().RecentYearsWindow, cfg.RecentYearsWindow)
}

func TestLoadOrCreateForceDefault(t *testing.T) {
	withTempXDGConfigHome(t)

	cfg, err := LoadOrCreate(true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrCreateRejectsInvalidOverlay(t *testing.T) {
	tmpDir := withTempXDGConfigHome(t)

	dir := filepath.Join(tmpDir, "oplcore")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("pageSize: -1\n"), 0o644))

	_, err := LoadOrCreate(false)
	assert.Error(t, err)
}
