package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector tracks pipeline activity for the /metrics endpoint.
type Collector struct {
	uploadsTotal   *prometheus.CounterVec
	stageRequests  *prometheus.CounterVec
	rowsNormalized prometheus.Counter
	uploadDuration prometheus.Histogram
}

func New() *Collector {
	c := &Collector{}

	c.uploadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smehealth",
		Name:      "uploads_total",
		Help:      "Uploaded datasets by classified dataset type",
	}, []string{"dataset_type"})

	c.stageRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smehealth",
		Name:      "stage_requests_total",
		Help:      "Requests per assessment stage endpoint",
	}, []string{"stage"})

	c.rowsNormalized = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "smehealth",
		Name:      "rows_normalized_total",
		Help:      "Transaction rows normalized across all uploads",
	})

	c.uploadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "smehealth",
		Name:      "upload_duration_seconds",
		Help:      "Wall time spent parsing and summarizing one upload",
		Buckets:   prometheus.DefBuckets,
	})

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.uploadsTotal,
		c.stageRequests,
		c.rowsNormalized,
		c.uploadDuration,
	)
}

// ObserveUpload records one classified upload.
func (c *Collector) ObserveUpload(datasetType string, rows int, elapsed time.Duration) {
	c.uploadsTotal.WithLabelValues(datasetType).Inc()
	c.rowsNormalized.Add(float64(rows))
	c.uploadDuration.Observe(elapsed.Seconds())
}

// IncStage counts one request to a downstream assessment stage.
func (c *Collector) IncStage(stage string) {
	c.stageRequests.WithLabelValues(stage).Inc()
}
