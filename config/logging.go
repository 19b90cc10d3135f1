package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines diagnostic log settings.
type LoggingConfig struct {
	// Level is a zerolog level name such as debug, info or warn.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = zerolog.InfoLevel.String()
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown level %s", c.Level)
	}
	return nil
}
