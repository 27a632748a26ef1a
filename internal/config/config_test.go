package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithoutSystemEnv(), WithSearchDirs())
	require.NoError(t, err)

	want := Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log:   LogConfig{Level: "info"},
		Build: BuildConfig{OutputDir: "dist"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"THUMBFORGE_SERVER_ADDR":             "127.0.0.1:9090",
		"THUMBFORGE_SERVER_SHUTDOWN_TIMEOUT": "3s",
		"THUMBFORGE_SITE_BASE_URL":           " https://thumbforge.studio ",
		"THUMBFORGE_LOG_LEVEL":               "DEBUG",
		"THUMBFORGE_BUILD_OUTPUT_DIR":        "out",
		"PORT":                               "7000",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithSearchDirs())
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr, "explicit addr beats PORT")
	require.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "https://thumbforge.studio", cfg.Site.BaseURL)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "out", cfg.Build.OutputDir)
}

func TestLoadFallsBackToPort(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithSearchDirs())
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "thumbforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9191"
  request_timeout: 45s
site:
  scene_url: https://prod.spline.design/abc/scene.splinecode
log:
  level: warn
`), 0o600))

	t.Run("explicit file", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(WithConfigFile(path), WithoutSystemEnv())
		require.NoError(t, err)
		require.Equal(t, ":9191", cfg.Server.Addr)
		require.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
		require.Equal(t, "https://prod.spline.design/abc/scene.splinecode", cfg.Site.SceneURL)
		require.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("discovered in search dir", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(WithSearchDirs(dir), WithoutSystemEnv())
		require.NoError(t, err)
		require.Equal(t, ":9191", cfg.Server.Addr)
	})

	t.Run("environment beats file", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(
			WithConfigFile(path),
			WithEnvMap(map[string]string{"THUMBFORGE_LOG_LEVEL": "error"}),
			WithoutSystemEnv(),
		)
		require.NoError(t, err)
		require.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("overrides beat environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(
			WithConfigFile(path),
			WithEnvMap(map[string]string{"THUMBFORGE_BUILD_OUTPUT_DIR": "env-out"}),
			WithOverrides(map[string]any{"build.output_dir": "flag-out"}),
			WithoutSystemEnv(),
		)
		require.NoError(t, err)
		require.Equal(t, "flag-out", cfg.Build.OutputDir)
	})
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Parallel()

	_, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml")), WithoutSystemEnv())
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"THUMBFORGE_SERVER_READ_TIMEOUT": "0s",
		"THUMBFORGE_SITE_BASE_URL":       "thumbforge.studio",
		"THUMBFORGE_SITE_SCENE_URL":      "ftp://scene",
		"THUMBFORGE_LOG_LEVEL":           "loud",
		"THUMBFORGE_BUILD_OUTPUT_DIR":    " ",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithSearchDirs())
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, []string{
		"server.read_timeout",
		"site.base_url",
		"site.scene_url",
		"log.level",
		"build.output_dir",
	}, vErr.Fields())
	require.Contains(t, err.Error(), "server.read_timeout")
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "THUMBFORGE_SERVER_ADDR", EnvKey("server.addr"))
	require.Equal(t, "THUMBFORGE_SITE_SCENE_URL", EnvKey("site.scene_url"))
}
