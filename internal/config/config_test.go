package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, c *Config)
	}{
		{
			name:    "empty object uses defaults",
			content: `{}`,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, Default(), c)
			},
		},
		{
			name: "custom values are kept",
			content: `{
  "paths": {"models": "src/Models", "routes": "routes/admin.php"},
  "namespaces": {"models": "Domain\\Models"},
  "classes": {"fileCast": "App\\Casts\\Upload"},
  "locales": ["fr", "de", "en"],
  "routeMode": "replace",
  "irregulars": {"octopus": "octopodes"}
}`,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "src/Models", c.Paths.Models)
				assert.Equal(t, "routes/admin.php", c.Paths.Routes)
				assert.Equal(t, "database/migrations", c.Paths.Migrations)
				assert.Equal(t, `Domain\Models`, c.Namespaces.Models)
				assert.Equal(t, `App\Casts\Upload`, c.Classes.FileCast)
				assert.Equal(t, `App\Induxia\DataTable`, c.Classes.DataTable)
				assert.Equal(t, []string{"fr", "de", "en"}, c.Locales)
				assert.Equal(t, RouteModeReplace, c.RouteMode)
				assert.Equal(t, map[string]string{"octopus": "octopodes"}, c.Irregulars)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			got, err := LoadConfigFromPath(path)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestLoadConfigFromPath_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(string) string
		errContains string
	}{
		{
			name: "file not found",
			setupFunc: func(tmpDir string) string {
				return filepath.Join(tmpDir, "nonexistent.json")
			},
			errContains: "failed to read config file",
		},
		{
			name: "invalid json",
			setupFunc: func(tmpDir string) string {
				return writeConfig(t, tmpDir, "invalid json")
			},
			errContains: "failed to parse config file",
		},
		{
			name: "duplicate locale",
			setupFunc: func(tmpDir string) string {
				return writeConfig(t, tmpDir, `{"locales": ["en", "en"]}`)
			},
			errContains: `locale "en" is listed more than once`,
		},
		{
			name: "unknown route mode",
			setupFunc: func(tmpDir string) string {
				return writeConfig(t, tmpDir, `{"routeMode": "prepend"}`)
			},
			errContains: `unknown route mode "prepend"`,
		},
		{
			name: "bad debounce",
			setupFunc: func(tmpDir string) string {
				return writeConfig(t, tmpDir, `{"watch": {"debounce": "soon"}}`)
			},
			errContains: "invalid watch debounce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromPath(tt.setupFunc(t.TempDir()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("config in parent dir", func(t *testing.T) {
		tmpDir := t.TempDir()
		subDir := filepath.Join(tmpDir, "app", "Models")
		require.NoError(t, os.MkdirAll(subDir, 0755))
		writeConfig(t, tmpDir, `{"locales": ["en"]}`)

		got, projectRoot, err := Load(subDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, got.Locales)

		expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
		actualRoot, _ := filepath.EvalSymlinks(projectRoot)
		assert.Equal(t, expectedRoot, actualRoot)
	})

	t.Run("no config found", func(t *testing.T) {
		_, _, err := loadConfigFromDir(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	got, root, err := Load(dir)
	require.NoError(t, err)

	// Test: without a config file the directory itself is the project root
	assert.Equal(t, dir, root)
	assert.Equal(t, Default(), got)
}

func TestOptions(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := Default()

	opts := c.Options(ts)
	assert.Equal(t, "app/Models", opts.ModelsDir)
	assert.Equal(t, "resources/views/pages", opts.ViewsDir)
	assert.Equal(t, `App\Http\Controllers`, opts.ControllerNamespace)
	assert.Equal(t, `App\Casts\FileCast`, opts.FileCast)
	assert.Equal(t, []string{"en", "ar"}, opts.Locales)
	assert.Equal(t, ts, opts.Timestamp)

	// Test: options do not share the locale slice with the config
	opts.Locales[0] = "xx"
	assert.Equal(t, "en", c.Locales[0])

	d, err := c.DebounceInterval()
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, d)
}
