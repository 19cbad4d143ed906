// Package metrics records scan activity with Prometheus collectors so a run
// can be exported for the node exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/liamg/shark/scan"
)

const (
	namespace = "shark"
	subsystem = "scan"
)

// Recorder implements scan.Observer on a private registry.
type Recorder struct {
	registry      *prometheus.Registry
	ports         *prometheus.CounterVec
	banners       *prometheus.CounterVec
	busyWorkers   prometheus.Gauge
	scans         prometheus.Counter
	scanDuration  prometheus.Histogram
	lastCompleted prometheus.Gauge
}

var _ scan.Observer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ports_total",
				Help:      "Ports scanned by outcome",
			},
			[]string{"status"},
		),
		banners: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "banner_probes_total",
				Help:      "Banner probes by whether a banner was captured",
			},
			[]string{"captured"},
		),
		busyWorkers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "busy_workers",
				Help:      "Workers currently scanning a port",
			},
		),
		scans: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Completed scan runs",
			},
		),
		scanDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "duration_seconds",
				Help:      "Wall clock duration of scan runs",
				Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 600},
			},
		),
		lastCompleted: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_completed_timestamp_seconds",
				Help:      "Unix time the most recent scan run completed",
			},
		),
	}

	r.registry.MustRegister(
		r.ports,
		r.banners,
		r.busyWorkers,
		r.scans,
		r.scanDuration,
		r.lastCompleted,
	)
	return r
}

func (r *Recorder) PortScanned(status scan.Status) {
	r.ports.WithLabelValues(status.String()).Inc()
}

func (r *Recorder) BannerProbed(captured bool) {
	if captured {
		r.banners.WithLabelValues("true").Inc()
		return
	}
	r.banners.WithLabelValues("false").Inc()
}

func (r *Recorder) WorkerBusy() {
	r.busyWorkers.Inc()
}

func (r *Recorder) WorkerIdle() {
	r.busyWorkers.Dec()
}

func (r *Recorder) ScanCompleted(duration time.Duration) {
	r.scans.Inc()
	r.scanDuration.Observe(duration.Seconds())
	r.lastCompleted.SetToCurrentTime()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every collected metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
