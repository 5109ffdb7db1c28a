package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	coremetrics "github.com/outage-ua/gpvbot/core/metrics"
)

// Config configures the optional Pushgateway sink. A one-shot cron run
// cannot expose a scrape endpoint, so observations are pushed on Close.
type Config struct {
	PushEnabled bool   `json:"push_enabled"`
	PushURL     string `json:"push_url"`
	JobName     string `json:"job_name"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.JobName == "" {
		c.JobName = "gpvbot"
	}
}

// NewSink returns a Pushgateway sink when enabled, NopSink otherwise.
func NewSink(cfg Config) coremetrics.Sink {
	cfg.SetDefaults()
	if !cfg.PushEnabled || cfg.PushURL == "" {
		return coremetrics.NopSink{}
	}
	return NewPushSink(cfg)
}

// PushSink collects run metrics in a private registry and pushes them to
// a Pushgateway when the run finishes.
type PushSink struct {
	pusher   *push.Pusher
	fetches  *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration prometheus.Gauge
}

// NewPushSink builds a sink with its own registry.
func NewPushSink(cfg Config) *PushSink {
	registry := prometheus.NewRegistry()
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gpvbot_source_fetches_total",
		Help: "Source fetch attempts by outcome",
	}, []string{"source", "ok"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gpvbot_runs_total",
		Help: "Completed runs by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gpvbot_run_duration_seconds",
		Help: "Duration of the last run",
	})
	registry.MustRegister(fetches, runs, duration)

	return &PushSink{
		pusher:   push.New(cfg.PushURL, cfg.JobName).Gatherer(registry),
		fetches:  fetches,
		runs:     runs,
		duration: duration,
	}
}

func (s *PushSink) RecordFetch(source string, ok bool) {
	s.fetches.WithLabelValues(source, strconv.FormatBool(ok)).Inc()
}

func (s *PushSink) RecordRun(outcome string, seconds float64) {
	s.runs.WithLabelValues(outcome).Inc()
	s.duration.Set(seconds)
}

func (s *PushSink) Close() error {
	return s.pusher.Push()
}
