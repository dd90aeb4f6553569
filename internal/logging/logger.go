package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixera/marketplace-api/internal/config"
)

// New constructs a zerolog logger from config settings.
// Defaults to JSON, info level, stdout when fields are empty.
func New(cfg *config.Config) *zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	output := io.Writer(os.Stdout)
	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	base := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", "marketplace-api").
		Logger()

	return &base
}
