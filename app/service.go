package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/torotation/config"
	coremetrics "github.com/kilianp07/torotation/core/metrics"
	"github.com/kilianp07/torotation/core/roster"
	"github.com/kilianp07/torotation/core/rotation"
	"github.com/kilianp07/torotation/infra/logger"
	"github.com/kilianp07/torotation/infra/metrics"
	"github.com/kilianp07/torotation/pkg/export"
)

// Service turns a configuration into a rendered rotation.
type Service struct {
	cfg      *config.Config
	clock    Clock
	log      logger.Logger
	stdout   io.Writer
	recorder coremetrics.ScheduleRecorder
	textfile *metrics.PromRecorder
	runID    string
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for the default start date.
func WithClock(c Clock) Option { return func(s *Service) { s.clock = c } }

// WithStdout sets the terminal sink.
func WithStdout(w io.Writer) Option { return func(s *Service) { s.stdout = w } }

// WithLogger replaces the zerolog logger built from the configuration.
func WithLogger(l logger.Logger) Option { return func(s *Service) { s.log = l } }

// WithRecorder sets an additional schedule recorder.
func WithRecorder(r coremetrics.ScheduleRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	svc := &Service{
		cfg:      cfg,
		clock:    SystemClock{},
		stdout:   os.Stdout,
		recorder: coremetrics.NopRecorder{},
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logger.New("rotation",
			logger.WithLevel(cfg.Logging.Level),
			logger.WithField("run_id", svc.runID))
	}
	if cfg.Metrics.TextfilePath != "" {
		prom, err := metrics.NewPromRecorder()
		if err != nil {
			return nil, fmt.Errorf("prom recorder: %w", err)
		}
		svc.textfile = prom
	}
	return svc, nil
}

// RunID identifies this invocation in logs and metrics.
func (s *Service) RunID() string { return s.runID }

// StartDate returns the configured start date or the clock's today.
func (s *Service) StartDate() (time.Time, error) {
	if s.cfg.Rotation.StartDate == "" {
		return rotation.CalendarDate(s.clock.Now()), nil
	}
	return rotation.ParseStartDate(s.cfg.Rotation.StartDate)
}

// Plan resolves the owners and start date and generates the schedule.
func (s *Service) Plan() (roster.Source, rotation.Schedule, error) {
	src, owners, err := roster.Resolve(s.cfg.Roster.Names, s.cfg.Roster.File)
	if err != nil {
		return src, nil, err
	}
	s.log.Debugw("owners resolved", map[string]any{"source": string(src), "owners": owners})

	start, err := s.StartDate()
	if err != nil {
		return src, nil, err
	}
	sched, err := rotation.Generate(owners, start, s.cfg.Rotation.Days,
		rotation.WithBackupPolicy(s.cfg.Rotation.Policy()))
	if err != nil {
		return src, nil, err
	}
	if len(sched) == 0 {
		s.log.Warnf("no Wednesday between %s and %d days later, schedule is empty",
			start.Format(rotation.DateLayout), s.cfg.Rotation.Days)
	}

	ev := coremetrics.ScheduleEvent{
		RunID:       s.runID,
		Source:      string(src),
		Owners:      len(owners),
		Assignments: len(sched),
		Days:        s.cfg.Rotation.Days,
		Start:       start,
		End:         sched.End(),
		Time:        s.clock.Now(),
	}
	s.record(ev)
	return src, sched, nil
}

// Run generates the schedule and delivers it to the terminal or the output
// file. The file is only touched once rendering has succeeded.
func (s *Service) Run(ctx context.Context) error {
	src, sched, err := s.Plan()
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, format, sched); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.cfg.Output.ToFile {
		if err := os.WriteFile(s.cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", s.cfg.Output.Path, err)
		}
		s.log.Infof("wrote %d assignments from %s owners to %s", len(sched), src, s.cfg.Output.Path)
	} else {
		if _, err := s.stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write terminal: %w", err)
		}
		s.log.Debugf("printed %d assignments from %s owners", len(sched), src)
	}

	if s.textfile != nil {
		if err := s.textfile.WriteTextfile(s.cfg.Metrics.TextfilePath); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) record(ev coremetrics.ScheduleEvent) {
	recorders := []coremetrics.ScheduleRecorder{s.recorder}
	if s.textfile != nil {
		recorders = append(recorders, s.textfile)
	}
	for _, r := range recorders {
		if err := r.RecordSchedule(ev); err != nil {
			s.log.Errorf("record schedule: %v", err)
		}
	}
}
