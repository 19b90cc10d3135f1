package config

import (
	"fmt"

	"github.com/kilianp07/torotation/pkg/export"
)

// DefaultOutputPath is the file overwritten when file output is selected.
const DefaultOutputPath = "TO_Rotation.txt"

// OutputConfig selects the renderer and where the schedule goes.
type OutputConfig struct {
	// ToFile writes to Path instead of the terminal.
	ToFile bool   `json:"to_file"`
	Path   string `json:"path"`
	// Format is one of table, blocks, csv, json or yaml.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = DefaultOutputPath
	}
	if c.Format == "" {
		c.Format = string(export.FormatTable)
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	if c.ToFile && c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
