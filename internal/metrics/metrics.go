package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus metrics for the extraction server.
type Collector struct {
	extractionsTotal      *prometheus.CounterVec
	transactionsExtracted prometheus.Counter
	verificationChecks    *prometheus.CounterVec
	extractionDuration    prometheus.Histogram
}

// New creates a Collector under the given metric namespace.
func New(namespace string) *Collector {
	return &Collector{
		extractionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extractions_total",
				Help:      "Total number of statement extractions by status",
			},
			[]string{"status"},
		),
		transactionsExtracted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_extracted_total",
				Help:      "Total number of transactions extracted",
			},
		),
		verificationChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verification_checks_total",
				Help:      "Total number of verification check results by outcome",
			},
			[]string{"outcome"},
		),
		extractionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "extraction_duration_seconds",
				Help:      "Time spent extracting and parsing one statement",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Register registers all collectors with the given registry.
func (c *Collector) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		c.extractionsTotal,
		c.transactionsExtracted,
		c.verificationChecks,
		c.extractionDuration,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordExtraction records one finished extraction attempt.
func (c *Collector) RecordExtraction(status string, transactions int, d time.Duration) {
	c.extractionsTotal.WithLabelValues(status).Inc()
	c.transactionsExtracted.Add(float64(transactions))
	c.extractionDuration.Observe(d.Seconds())
}

// RecordChecks records a verification run's outcome counts.
func (c *Collector) RecordChecks(passed, warned, failed int) {
	c.verificationChecks.WithLabelValues("pass").Add(float64(passed))
	c.verificationChecks.WithLabelValues("warn").Add(float64(warned))
	c.verificationChecks.WithLabelValues("fail").Add(float64(failed))
}
