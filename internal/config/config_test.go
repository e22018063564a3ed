package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"philcali.me/recipebook/internal/api"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, api.DefaultBaseURL, cfg.API.URL)
		require.Equal(t, BackendHTTP, cfg.Store.Backend)
		require.Equal(t, time.Duration(0), cfg.API.Timeout)
		require.False(t, cfg.Errors.SurfaceLoad)
		require.Equal(t, "default", cfg.DynamoDB.Account)
		require.Empty(t, cfg.File)
		require.Equal(t, slog.LevelInfo, cfg.LogLevel())
	})

	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, `
api:
  url: http://localhost:8080/api/
  timeout: 5s
errors:
  surface_load: true
  surface_delete: true
log:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "http://localhost:8080/api/", cfg.API.URL)
		require.Equal(t, 5*time.Second, cfg.API.Timeout)
		require.True(t, cfg.Errors.SurfaceLoad)
		require.True(t, cfg.Errors.SurfaceDelete)
		require.Equal(t, path, cfg.File)
		require.Equal(t, slog.LevelDebug, cfg.LogLevel())
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		path := writeConfig(t, "api:\n  url: http://from-file/\n")
		t.Setenv("RECIPES_API_URL", "http://from-env/")
		t.Setenv("RECIPES_NOTIFICATIONS_TOPIC_ARN", "arn:aws:sns:us-east-1:000000000000:recipes")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "http://from-env/", cfg.API.URL)
		require.Equal(t, "arn:aws:sns:us-east-1:000000000000:recipes", cfg.Notifications.TopicArn)
	})

	t.Run("MissingExplicitFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("DynamoDBRequiresTable", func(t *testing.T) {
		path := writeConfig(t, "store:\n  backend: dynamodb\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "dynamodb.table")
	})

	t.Run("DynamoDBBackend", func(t *testing.T) {
		path := writeConfig(t, "store:\n  backend: dynamodb\ndynamodb:\n  table: RecipeData\n  endpoint: http://localhost:8000\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "RecipeData", cfg.DynamoDB.Table)
		require.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		path := writeConfig(t, "store:\n  backend: sqlite\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "store.backend")
	})
}
