package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  admin_password: secret
firestore:
  project_id: demo
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "ew_batches", cfg.Firestore.Collections.Batches)
	assert.Equal(t, "ew_cases", cfg.Firestore.Collections.Cases)
	assert.Equal(t, "ew_operator_stats", cfg.Firestore.Collections.OperatorStats)
	assert.Equal(t, "operators", cfg.Firestore.Collections.Operators)
	assert.Equal(t, "monitor_session", cfg.Session.CookieName)
	assert.Equal(t, "Europe/Warsaw", cfg.Dashboard.Timezone)
	require.Len(t, cfg.Dashboard.Groups, 3)
	assert.Equal(t, "DE", cfg.Dashboard.Groups[0].Name)
	assert.Equal(t, "UKPL", cfg.Dashboard.Groups[2].Name)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.LiveRefresh())
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  admin_password: from-yaml
firestore:
  project_id: demo
`)
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Server.AdminPassword)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("FIRESTORE_PROJECT_ID", "demo")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "pw", cfg.Server.AdminPassword)
	assert.Equal(t, "demo", cfg.Firestore.ProjectID)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing admin password",
			content: "firestore:\n  project_id: demo\n",
			wantErr: "admin_password",
		},
		{
			name:    "missing project",
			content: "server:\n  admin_password: x\n",
			wantErr: "project_id",
		},
		{
			name:    "project detected from credentials",
			content: "server:\n  admin_password: x\nfirestore:\n  credentials_json: '{\"project_id\": \"demo\"}'\n",
		},
		{
			name:    "bad timezone",
			content: "server:\n  admin_password: x\nfirestore:\n  project_id: demo\ndashboard:\n  timezone: Mars/Olympus\n",
			wantErr: "timezone",
		},
		{
			name:    "file output without path",
			content: "server:\n  admin_password: x\nfirestore:\n  project_id: demo\nlogger:\n  output: file\n",
			wantErr: "logger.file.path",
		},
		{
			name:    "malformed yaml",
			content: "server: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
