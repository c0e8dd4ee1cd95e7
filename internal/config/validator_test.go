package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:            8080,
		APIKey:          "key",
		Environment:     EnvironmentDev,
		LogLevel:        "info",
		LogFormat:       "text",
		StorageBackend:  StorageBackendMemory,
		DBMaxConns:      5,
		MaxUploadBytes:  1 << 20,
		Cities:          []string{"Guayaquil"},
		EventMaxRetries: 3,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{"valid", func(*Config) {}, nil},
		{"missing api key", func(c *Config) { c.APIKey = "" }, []string{"API_KEY must be set"}},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, []string{"LOG_LEVEL must be one of", `"trace"`}},
		{"no cities", func(c *Config) { c.Cities = nil }, []string{"LEAGUE_CITIES must list at least 1"}},
		{"blank city", func(c *Config) { c.Cities = []string{"Quito", ""} }, []string{"LEAGUE_CITIES[1] must be set"}},
		{"bad endpoint", func(c *Config) { c.S3Endpoint = "not a url" }, []string{"S3_ENDPOINT is not a valid URL"}},
		{"discord token without id", func(c *Config) { c.DiscordWebhookToken = "tok" }, []string{"DISCORD_WEBHOOK_ID must be set together with"}},
		{
			"several at once",
			func(c *Config) { c.Port = 70000; c.StorageBackend = "mongo" },
			[]string{"PORT out of range", "STORAGE_BACKEND must be one of"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, frag := range tt.want {
				assert.Contains(t, err.Error(), frag)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg := validConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.StorageBackend = StorageBackendPostgres
	cfg.DBPassword = ExampleDBPassword
	cfg.APIKey = ExampleAPIKey
	cfg.S3Bucket = "evidence"
	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "S3_BUCKET")

	prod := validConfig()
	prod.Environment = EnvironmentProduction
	require.Len(t, prod.Warnings(), 1)
	assert.Contains(t, prod.Warnings()[0], "STORAGE_BACKEND=memory")
}
