package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playtime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_KEY", "")
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_ENDPOINT", "")
}

func TestConfig_Validate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
		errMsg  string
	}{
		{
			name: "valid config",
			config: Config{
				YouTube: YouTubeConfig{APIKey: "test-key", PageSize: 50},
				Log:     LogConfig{Level: "info"},
			},
		},
		{
			name: "missing api key",
			config: Config{
				YouTube: YouTubeConfig{PageSize: 50},
				Log:     LogConfig{Level: "info"},
			},
			wantErr: ErrMissingAPIKey,
			errMsg:  "no api key found",
		},
		{
			name: "page size too large",
			config: Config{
				YouTube: YouTubeConfig{APIKey: "test-key", PageSize: 51},
				Log:     LogConfig{Level: "info"},
			},
			wantErr: ErrInvalid,
			errMsg:  "PageSize",
		},
		{
			name: "negative max pages",
			config: Config{
				YouTube: YouTubeConfig{APIKey: "test-key", PageSize: 50, MaxPages: -1},
				Log:     LogConfig{Level: "info"},
			},
			wantErr: ErrInvalid,
			errMsg:  "MaxPages",
		},
		{
			name: "invalid endpoint",
			config: Config{
				YouTube: YouTubeConfig{APIKey: "test-key", PageSize: 50, Endpoint: "not a url"},
				Log:     LogConfig{Level: "info"},
			},
			wantErr: ErrInvalid,
			errMsg:  "Endpoint",
		},
		{
			name: "unknown log level",
			config: Config{
				YouTube: YouTubeConfig{APIKey: "test-key", PageSize: 50},
				Log:     LogConfig{Level: "trace"},
			},
			wantErr: ErrInvalid,
			errMsg:  "Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr != nil {
				require.Error(t, err, "expected validation to fail")
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Contains(t, err.Error(), tt.errMsg,
					"error message should mention the problematic field")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "env-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.YouTube.APIKey)
	assert.Equal(t, 50, cfg.YouTube.PageSize)
	assert.Equal(t, 0, cfg.YouTube.MaxPages)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Contains(t, err.Error(), "no api key found")
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
youtube:
  api_key: file-key
  page_size: 25
  max_pages: 1
report:
  labels:
    videos_left: Remaining
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.YouTube.APIKey)
	assert.Equal(t, 25, cfg.YouTube.PageSize)
	assert.Equal(t, 1, cfg.YouTube.MaxPages)
	assert.Equal(t, "Remaining", cfg.Report.Labels["videos_left"])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "youtube-env-key")
	t.Setenv("YOUTUBE_ENDPOINT", "http://localhost:9999/")
	path := writeConfig(t, "youtube:\n  api_key: file-key\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "youtube-env-key", cfg.YouTube.APIKey)
	assert.Equal(t, "http://localhost:9999/", cfg.YouTube.Endpoint)

	t.Setenv("API_KEY", "api-env-key")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "api-env-key", cfg.YouTube.APIKey)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "env-key")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = Load(writeConfig(t, "youtube: [unclosed"))
	assert.True(t, errors.Is(err, ErrInvalid))
}
