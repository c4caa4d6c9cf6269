package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	Level       string `envconfig:"LOGGER_LEVEL" default:"info"`
	Format      string `envconfig:"LOGGER_FORMAT" default:"json"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"cosmos-rest"`
	WithSource  bool   `envconfig:"LOGGER_WITH_SOURCE" default:"false"`
}

func (c Config) Validate(_ context.Context) error {
	if _, ok := levels[strings.ToLower(c.Level)]; !ok {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatText:
	default:
		return errors.New("invalid logger format")
	}

	return nil
}

// ValidateWithContext lets ozzo-validation descend into the logger config.
func (c Config) ValidateWithContext(ctx context.Context) error {
	return c.Validate(ctx)
}
