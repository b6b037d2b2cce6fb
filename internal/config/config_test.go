// Package config_test tests the service configuration.
package config_test

import (
	"testing"

	"github.com/book-expert/wod-skill-service/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullTOML = `
[nats]
url = "nats://localhost:4222"
skill_request_subject = "skill.request"

[http]
listen_address = ":9090"

[content]
api_url = "https://api.example.com/wods"
timeout_seconds = 5

[skill]
application_id = "amzn1.ask.skill.00000000-0000-0000-0000-000000000000"
timezone = "US/Eastern"

[paths]
base_logs_dir = "/var/log/wod-skill-service"
`

func TestConfig_UnmarshalFullTOML(t *testing.T) {
	t.Parallel()

	var cfg config.Config

	err := toml.Unmarshal([]byte(fullTOML), &cfg)
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyDefaults())

	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "skill.request", cfg.NATS.SkillRequestSubject)
	assert.Equal(t, ":9090", cfg.HTTP.ListenAddress)
	assert.Equal(t, "https://api.example.com/wods", cfg.Content.APIURL)
	assert.Equal(t, 5, cfg.Content.TimeoutSeconds)
	assert.Equal(t, "amzn1.ask.skill.00000000-0000-0000-0000-000000000000", cfg.Skill.ApplicationID)
	assert.Equal(t, "US/Eastern", cfg.Skill.Timezone)
	assert.Equal(t, "/var/log/wod-skill-service", cfg.Paths.BaseLogsDir)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config

	err := toml.Unmarshal([]byte(`
[content]
api_url = "https://api.example.com/wods"
`), &cfg)
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyDefaults())

	assert.Equal(t, config.DefaultTimeoutSeconds, cfg.Content.TimeoutSeconds)
	assert.Equal(t, config.DefaultTimezone, cfg.Skill.Timezone)
	assert.Equal(t, config.DefaultListenAddress, cfg.HTTP.ListenAddress)
	assert.Empty(t, cfg.NATS.URL)
}

func TestConfig_MissingContentURL(t *testing.T) {
	t.Parallel()

	var cfg config.Config

	err := cfg.ApplyDefaults()
	require.ErrorIs(t, err, config.ErrContentURLRequired)
}
