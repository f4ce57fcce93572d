package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackAppToken      string `envconfig:"SLACK_APP_TOKEN" required:"true"`
	SlackChannelID     string `envconfig:"SLACK_CHANNEL_ID" required:"true"`
	SlackOwnerID       string `envconfig:"SLACK_OWNER_ID" required:"true"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"` // empty disables /slack/commands
	SelfPingURL        string `envconfig:"SELF_PING_URL"`        // empty disables the keep-alive loop
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./planner.db"`
	Port               string `envconfig:"PORT" default:"3000"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
