// Package config loads runtime configuration from environment variables.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DBPath is the SQLite database file. ":memory:" works for local runs.
	DBPath string `env:"DB_PATH, default=gallery.db"`

	// UploadDir holds uploaded image files, served under /uploads.
	UploadDir string `env:"UPLOAD_DIR, default=uploads"`

	// FrontendURL is the allowed CORS origin. Empty allows any origin.
	FrontendURL string `env:"FRONTEND_URL"`

	// DisplayTZ is the IANA zone timestamps are rendered in.
	DisplayTZ string `env:"DISPLAY_TZ, default=Asia/Shanghai"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
