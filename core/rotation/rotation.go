package rotation

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted for start dates and used
// when rendering assignments.
const DateLayout = "2006-01-02"

// RotationWeekday is the weekday every assignment falls on.
const RotationWeekday = time.Wednesday

// Assignment is one scheduled week.
type Assignment struct {
	Date    time.Time
	Primary string
	Backup  string
}

// Schedule is an ordered list of weekly assignments.
type Schedule []Assignment

// End returns the date of the last assignment, or the zero time for an
// empty schedule.
func (s Schedule) End() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Date
}

// Owners returns the distinct primaries in order of first appearance.
func (s Schedule) Owners() []string {
	seen := make(map[string]struct{}, len(s))
	var out []string
	for _, a := range s {
		if _, ok := seen[a.Primary]; ok {
			continue
		}
		seen[a.Primary] = struct{}{}
		out = append(out, a.Primary)
	}
	return out
}

// Option customises Generate.
type Option func(*options)

type options struct {
	policy BackupPolicy
}

// WithBackupPolicy sets the week-0 backup policy. The default is BackupWrap.
func WithBackupPolicy(p BackupPolicy) Option {
	return func(o *options) { o.policy = p }
}

// Generate builds the rotation for owners starting at the first Wednesday
// on or after start and ending no later than start+days.
// A horizon too short to reach a Wednesday yields an empty schedule.
func Generate(owners []string, start time.Time, days int, opts ...Option) (Schedule, error) {
	if len(owners) == 0 {
		return nil, ErrEmptyOwnerList
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, days)
	}
	o := options{policy: BackupWrap}
	for _, opt := range opts {
		opt(&o)
	}

	start = CalendarDate(start)
	end := start.AddDate(0, 0, days)
	n := len(owners)

	var sched Schedule
	for i, d := 0, FirstWednesday(start); !d.After(end); i, d = i+1, d.AddDate(0, 0, 7) {
		backup := o.policy.firstBackup(owners)
		if i > 0 {
			backup = owners[(i-1)%n]
		}
		sched = append(sched, Assignment{Date: d, Primary: owners[i%n], Backup: backup})
	}
	return sched, nil
}

// FirstWednesday returns the first Wednesday on or after t's calendar date.
func FirstWednesday(t time.Time) time.Time {
	d := CalendarDate(t)
	offset := (int(RotationWeekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// CalendarDate drops the clock part of t, keeping its year, month and day
// as seen in t's location, at midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseStartDate parses a YYYY-MM-DD string.
func ParseStartDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, s, err)
	}
	return t, nil
}
