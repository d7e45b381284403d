// Package metric provides Prometheus metrics for SyncVault.
//
// The store records read/write outcomes and on-disk sizes so a host
// process can watch cache health (miss rates, corrupt payloads, write
// failures) without parsing logs. A nil *Registry disables recording.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation result labels.
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultCorrupt = "corrupt"
	ResultOK      = "ok"
	ResultError   = "error"
)

// File labels.
const (
	FilePayload  = "payload"
	FileMetadata = "metadata"
)

// Registry holds all store metrics.
type Registry struct {
	// Reads counts read operations by file and result (hit, miss, corrupt).
	Reads *prometheus.CounterVec

	// Writes counts write operations by file and result (ok, error).
	Writes *prometheus.CounterVec

	// Deletes counts delete operations by file.
	Deletes *prometheus.CounterVec

	// FileSize tracks the last written size per file in bytes.
	FileSize *prometheus.GaugeVec

	// QueueDepth tracks the number of pending jobs on the worker queue.
	QueueDepth prometheus.Gauge

	// OpDuration observes the duration of queue-executed operations.
	OpDuration *prometheus.HistogramVec

	reg *prometheus.Registry
}

// NewRegistry creates a metrics registry backed by its own Prometheus
// registry so two stores in one process do not collide.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		Reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "syncvault",
			Name:      "reads_total",
			Help:      "Read operations by file and result.",
		}, []string{"file", "result"}),
		Writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "syncvault",
			Name:      "writes_total",
			Help:      "Write operations by file and result.",
		}, []string{"file", "result"}),
		Deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "syncvault",
			Name:      "deletes_total",
			Help:      "Delete operations by file.",
		}, []string{"file"}),
		FileSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "syncvault",
			Name:      "file_size_bytes",
			Help:      "Size of the last written cache file in bytes.",
		}, []string{"file"}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "syncvault",
			Name:      "queue_depth",
			Help:      "Pending jobs on the store worker queue.",
		}),
		OpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "syncvault",
			Name:      "op_duration_seconds",
			Help:      "Duration of queue-executed store operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		reg: reg,
	}

	reg.MustRegister(r.Reads, r.Writes, r.Deletes, r.FileSize, r.QueueDepth, r.OpDuration)
	return r
}

// Handler returns an HTTP handler serving the registry in Prometheus
// exposition format, for host processes that expose /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// ObserveRead records a read outcome. Safe on a nil registry.
func (r *Registry) ObserveRead(file, result string) {
	if r == nil {
		return
	}
	r.Reads.WithLabelValues(file, result).Inc()
}

// ObserveWrite records a write outcome and the written size.
// Safe on a nil registry.
func (r *Registry) ObserveWrite(file, result string, size int) {
	if r == nil {
		return
	}
	r.Writes.WithLabelValues(file, result).Inc()
	if result == ResultOK {
		r.FileSize.WithLabelValues(file).Set(float64(size))
	}
}

// ObserveDelete records a delete. Safe on a nil registry.
func (r *Registry) ObserveDelete(file string) {
	if r == nil {
		return
	}
	r.Deletes.WithLabelValues(file).Inc()
	r.FileSize.WithLabelValues(file).Set(0)
}

// SetQueueDepth records the current worker queue depth. Safe on a nil
// registry.
func (r *Registry) SetQueueDepth(depth int) {
	if r == nil {
		return
	}
	r.QueueDepth.Set(float64(depth))
}

// ObserveOp records the duration of a queue-executed operation in
// seconds. Safe on a nil registry.
func (r *Registry) ObserveOp(op string, seconds float64) {
	if r == nil {
		return
	}
	r.OpDuration.WithLabelValues(op).Observe(seconds)
}
