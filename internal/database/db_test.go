package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "art_explorer",
				Username: "testuser",
				Password: "testpass",
			},
		},
		{
			name: "creates connection with custom port",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "art_explorer",
				Username: "admin",
				Password: "secret",
			},
		},
		{
			name: "creates connection with TLS enabled",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "art_explorer",
				Username: "testuser",
				Password: "testpass",
				TLS:      true,
			},
		},
		{
			name: "creates connection with custom params",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "art_explorer",
				Username: "testuser",
				Password: "testpass",
				Params:   map[string]string{"charset": "utf8mb4", "loc": "UTC"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
		})
	}
}
