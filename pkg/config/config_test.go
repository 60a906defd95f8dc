package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Config
		wantErr bool
	}{
		{
			name:  "empty uses defaults",
			input: "",
			want:  Default(),
		},
		{
			name: "overrides",
			input: `
server:
  port: 8080
database:
  url: postgresql://localhost/civboard
save:
  interval_seconds: 30
log:
  level: debug
`,
			want: &Config{
				Server:   ServerConfig{Port: 8080, AllowOrigin: "*"},
				Database: DatabaseConfig{URL: "postgresql://localhost/civboard", Migrations: "./migrations"},
				Save:     SaveConfig{IntervalSeconds: 30, QueueSize: 1024},
				Log:      LogConfig{Level: "debug"},
			},
		},
		{
			name:    "half tls",
			input:   "server:\n  tls_cert_file: cert.pem\n",
			wantErr: true,
		},
		{
			name:    "bad port",
			input:   "server:\n  port: 70000\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   "server: [",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("save:\n  interval_seconds: 5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Save.Interval())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
