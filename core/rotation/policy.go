package rotation

import (
	"fmt"
	"strings"
)

// BackupPolicy selects the backup of the first scheduled week, which has no
// previous primary to hand over from.
type BackupPolicy int

const (
	// BackupWrap uses the last owner of the list.
	BackupWrap BackupPolicy = iota
	// BackupBlank leaves the backup empty.
	BackupBlank
	// BackupPrimary duplicates the week-0 primary.
	BackupPrimary
)

// String returns the configuration name of the policy.
func (p BackupPolicy) String() string {
	switch p {
	case BackupWrap:
		return "wrap"
	case BackupBlank:
		return "blank"
	case BackupPrimary:
		return "primary"
	default:
		return "unknown"
	}
}

// ParseBackupPolicy converts a configuration value into a BackupPolicy.
// An empty string selects BackupWrap.
func ParseBackupPolicy(s string) (BackupPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return BackupWrap, nil
	case "blank":
		return BackupBlank, nil
	case "primary":
		return BackupPrimary, nil
	default:
		return BackupWrap, fmt.Errorf("%w: %q", ErrInvalidBackupPolicy, s)
	}
}

func (p BackupPolicy) firstBackup(owners []string) string {
	switch p {
	case BackupBlank:
		return ""
	case BackupPrimary:
		return owners[0]
	default:
		return owners[len(owners)-1]
	}
}
