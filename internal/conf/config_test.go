package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a temp dir so a developer's local gonotify.yaml is not
	// picked up.
	t.Chdir(t.TempDir())

	settings, err := Load("")
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.Equal(t, "gonotify", settings.AppID)
	assert.Equal(t, "default", settings.Asset.Theme)
	assert.Equal(t, 10*time.Minute, settings.Asset.CacheTTL)
	assert.Equal(t, "size", settings.Log.Rotation)
	assert.Empty(t, settings.URLs)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gonotify.yaml")
	content := []byte(`
debug: true
appid: MyNotifier
asset:
  dir: /usr/share/myicons
  theme: dark
urls:
  - gnome://
  - json://example.com/notify
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.Equal(t, "MyNotifier", settings.AppID)
	assert.Equal(t, "/usr/share/myicons", settings.Asset.Dir)
	assert.Equal(t, "dark", settings.Asset.Theme)
	assert.Equal(t, []string{"gnome://", "json://example.com/notify"}, settings.URLs)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
