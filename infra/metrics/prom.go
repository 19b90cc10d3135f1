package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/torotation/core/metrics"
)

// PromRecorder records schedule summaries in Prometheus metrics.
type PromRecorder struct {
	gatherer    prometheus.Gatherer
	runs        *prometheus.CounterVec
	assignments prometheus.Gauge
	owners      prometheus.Gauge
	horizon     prometheus.Gauge
	end         prometheus.Gauge
	lastRun     prometheus.Gauge
}

// NewPromRecorder registers rotation metrics on a private registry.
func NewPromRecorder() (*PromRecorder, error) {
	reg := prometheus.NewRegistry()
	return NewPromRecorderWithRegistry(reg, reg)
}

// NewPromRecorderWithRegistry registers metrics on reg and gathers them from
// g when writing a textfile. Nil arguments fall back to the default registry.
func NewPromRecorderWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	r := &PromRecorder{
		gatherer: g,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "torotation_runs_total",
			Help: "Schedules generated, by owner source",
		}, []string{"source"}),
		assignments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "torotation_assignments",
			Help: "Weekly assignments in the last schedule",
		}),
		owners: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "torotation_owners",
			Help: "Owners in rotation for the last schedule",
		}),
		horizon: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "torotation_horizon_days",
			Help: "Requested rotation period in days",
		}),
		end: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "torotation_schedule_end_timestamp_seconds",
			Help: "Date of the last scheduled week",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "torotation_last_run_timestamp_seconds",
			Help: "Time the last schedule was generated",
		}),
	}

	if err := reg.Register(r.runs); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		r.runs = are.ExistingCollector.(*prometheus.CounterVec)
	}
	for _, gp := range []*prometheus.Gauge{&r.assignments, &r.owners, &r.horizon, &r.end, &r.lastRun} {
		if err := reg.Register(*gp); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			*gp = are.ExistingCollector.(prometheus.Gauge)
		}
	}
	return r, nil
}

// RecordSchedule implements coremetrics.ScheduleRecorder.
func (r *PromRecorder) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	r.runs.WithLabelValues(ev.Source).Inc()
	r.assignments.Set(float64(ev.Assignments))
	r.owners.Set(float64(ev.Owners))
	r.horizon.Set(float64(ev.Days))
	if ev.End.IsZero() {
		r.end.Set(0)
	} else {
		r.end.Set(float64(ev.End.Unix()))
	}
	r.lastRun.Set(float64(ev.Time.Unix()))
	return nil
}

// WriteTextfile writes the gathered metrics to path in the text exposition
// format, replacing the file atomically.
func (r *PromRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
