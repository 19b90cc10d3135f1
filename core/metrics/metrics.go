package metrics

import "time"

// ScheduleEvent summarises one generated rotation.
type ScheduleEvent struct {
	RunID       string
	Source      string
	Owners      int
	Assignments int
	Days        int
	Start       time.Time
	End         time.Time
	Time        time.Time
}

// ScheduleRecorder records generated schedules for observability purposes.
type ScheduleRecorder interface {
	RecordSchedule(ev ScheduleEvent) error
}

// NopRecorder discards every event.
type NopRecorder struct{}

// RecordSchedule implements ScheduleRecorder.
func (NopRecorder) RecordSchedule(ScheduleEvent) error { return nil }
