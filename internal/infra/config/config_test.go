package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: Config{
				Station: StationConfig{
					BaseURL:         "https://stream.hoosierillusions.com",
					Name:            "hoosier-illusions",
					PollIntervalSec: 15,
				},
				Storage: StorageConfig{
					Bucket: "hoosier-illusions-radio-config",
				},
			},
			wantErr: false,
		},
		{
			name: "missing station base url",
			config: Config{
				Station: StationConfig{
					Name:            "hoosier-illusions",
					PollIntervalSec: 15,
				},
				Storage: StorageConfig{
					Bucket: "hoosier-illusions-radio-config",
				},
			},
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name: "malformed station base url",
			config: Config{
				Station: StationConfig{
					BaseURL:         "not a url",
					Name:            "hoosier-illusions",
					PollIntervalSec: 15,
				},
				Storage: StorageConfig{
					Bucket: "hoosier-illusions-radio-config",
				},
			},
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name: "missing bucket",
			config: Config{
				Station: StationConfig{
					BaseURL:         "https://stream.hoosierillusions.com",
					Name:            "hoosier-illusions",
					PollIntervalSec: 15,
				},
			},
			wantErr: true,
			errMsg:  "Bucket",
		},
		{
			name: "poll interval out of range",
			config: Config{
				Station: StationConfig{
					BaseURL:         "https://stream.hoosierillusions.com",
					Name:            "hoosier-illusions",
					PollIntervalSec: 0,
				},
				Storage: StorageConfig{
					Bucket: "hoosier-illusions-radio-config",
				},
			},
			wantErr: true,
			errMsg:  "PollIntervalSec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "https://stream.hoosierillusions.com", cfg.Station.BaseURL)
	assert.Equal(t, "hoosier-illusions", cfg.Station.Name)
	assert.Equal(t, 15, cfg.Station.PollIntervalSec)
	assert.Equal(t, "hoosier-illusions-radio-config", cfg.Storage.Bucket)
	assert.Equal(t, 10, cfg.Catalog.CacheSec)
	assert.Equal(t, "gemini", cfg.Chat.Provider)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin:\n  token: file-token\n"), 0644))

	t.Setenv("ADMIN_TOKEN", "env-token")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Admin.Token)
	assert.Equal(t, "env-key", cfg.Chat.Settings["api_key"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/server.yaml")
	assert.Error(t, err)
}
