package config

import (
	"fmt"

	"github.com/kilianp07/torotation/core/roster"
)

// RosterConfig defines where owner names come from.
type RosterConfig struct {
	// Names is an inline owner list. When non-empty the file is not read.
	Names []string `json:"names"`
	// File is the line-oriented owner list.
	File string `json:"file"`
}

// SetDefaults applies sane defaults.
func (c *RosterConfig) SetDefaults() {
	if c.File == "" {
		c.File = roster.DefaultFile
	}
}

// Validate checks mandatory fields.
func (c RosterConfig) Validate() error {
	if c.File == "" {
		return fmt.Errorf("file is required")
	}
	return nil
}
