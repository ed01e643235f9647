package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags and a command",
			args: []string{
				"-config", "/etc/client.json",
				"-base-url", "http://h/api",
				"-timeout", "1m",
				"-storage", "keyring",
				"-storage-dir", "/data",
				"-dsn", "/data/kv.db",
				"-keyring-service", "svc",
				"-fallback-token", "tok",
				"-log-path", "/tmp/l",
				"token", "show",
			},
			expected: &StructuredConfig{
				App:     App{FallbackToken: "tok", LogPath: "/tmp/l"},
				Adapter: Adapter{BaseURL: "http://h/api", RequestTimeout: time.Minute},
				Storage: Storage{
					Backend: "keyring",
					Dir:     "/data",
					DB:      DB{DSN: "/data/kv.db"},
					Keyring: Keyring{Service: "svc"},
				},
				JSONFilePath: "/etc/client.json",
				Args:         []string{"token", "show"},
			},
		},
		{
			name:     "short config alias",
			args:     []string{"-c", "cfg.json"},
			expected: &StructuredConfig{JSONFilePath: "cfg.json", Args: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-timeout", "forever"})
	assert.Error(t, err)
}
