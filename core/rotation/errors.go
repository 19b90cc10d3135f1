package rotation

import "errors"

var (
	// ErrEmptyOwnerList is returned when no owner names are available.
	ErrEmptyOwnerList = errors.New("owner list is empty")
	// ErrInvalidDuration is returned for a non-positive day count.
	ErrInvalidDuration = errors.New("duration must be a positive number of days")
	// ErrInvalidDateFormat is returned when a start date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	// ErrInvalidBackupPolicy is returned for an unknown week-0 backup policy.
	ErrInvalidBackupPolicy = errors.New("invalid backup policy")
)
