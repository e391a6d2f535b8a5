package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"ctchen222/tictactoe/internal/validator"
)

// Config holds the runtime settings of the tictactoe command.
type Config struct {
	Player1 string `env:"TTT_PLAYER1" env-default:"X" validate:"marker"`
	Player2 string `env:"TTT_PLAYER2" env-default:"O" validate:"marker,nefield=Player1"`

	LogLevel string `env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`

	ServiceName    string `env:"TTT_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
	ServiceVersion string `env:"TTT_SERVICE_VERSION" env-default:"v0.1.0"`
	// OTLPEndpoint enables export over gRPC when set, e.g. "otel-collector:4317".
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from env: %w", err)
	}
	if err := validator.GetValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
