package config

import (
	"fmt"

	"github.com/kilianp07/torotation/core/rotation"
)

// DefaultDays is the rotation horizon used when none is configured.
const DefaultDays = 60

// RotationConfig controls schedule generation.
type RotationConfig struct {
	// Days is the rotation period counted from the start date.
	Days int `json:"days"`
	// StartDate is a YYYY-MM-DD reference date. Empty means today.
	StartDate string `json:"start_date"`
	// BackupPolicy selects the first week's backup: wrap, blank or primary.
	BackupPolicy string `json:"backup_policy"`
}

// SetDefaults applies fallback values for optional fields.
func (c *RotationConfig) SetDefaults() {
	if c.Days == 0 {
		c.Days = DefaultDays
	}
	if c.BackupPolicy == "" {
		c.BackupPolicy = rotation.BackupWrap.String()
	}
}

// Validate checks the day count, the start date and the backup policy.
func (c RotationConfig) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("%w: got %d", rotation.ErrInvalidDuration, c.Days)
	}
	if c.StartDate != "" {
		if _, err := rotation.ParseStartDate(c.StartDate); err != nil {
			return err
		}
	}
	if _, err := rotation.ParseBackupPolicy(c.BackupPolicy); err != nil {
		return err
	}
	return nil
}

// Policy returns the parsed backup policy.
func (c RotationConfig) Policy() rotation.BackupPolicy {
	p, _ := rotation.ParseBackupPolicy(c.BackupPolicy)
	return p
}
