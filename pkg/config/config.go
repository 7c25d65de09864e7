package config

import (
	"arenadash/internal/repository"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

type Config struct {
	Repo     repository.Config `envPrefix:"REPO_"`
	LogLevel string            `env:"LOGGER_LEVEL" envDefault:"info"`

	ArenaBaseURL string    `env:"ARENA_BASE_URL" envDefault:"https://icfpc2020-api.testkontur.ru"`
	ArenaAPIKey  string    `env:"ARENA_API_KEY,required"`
	TeamID       uuid.UUID `env:"TEAM_ID,required"`

	OurBranches      []string `env:"OUR_BRANCHES" envSeparator:"," envDefault:""`
	OpponentCount    int      `env:"OPPONENT_COUNT" envDefault:"30"`
	SubmissionWindow int      `env:"SUBMISSION_WINDOW" envDefault:"20"`
	IndexPolicy      string   `env:"INDEX_POLICY" envDefault:"last-processed"`

	AutoRun             bool `env:"AUTO_RUN" envDefault:"true"`
	SyncIntervalSeconds int  `env:"SYNC_INTERVAL_SECONDS" envDefault:"30"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DiscordToken     string   `env:"DISCORD_TOKEN" envDefault:""`
	AllowedChannelID string   `env:"ALLOWED_CHANNEL_ID" envDefault:""`
	AdminUserIDs     []string `env:"ADMIN_USER_IDS" envSeparator:"," envDefault:""`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
