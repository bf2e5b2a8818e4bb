package metrics

import (
	"strconv"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics owns every collector the service exports. Build one per registry;
// registering twice on the same registry panics.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	quotationsSaved      *prometheus.CounterVec
	quotationAmount      *prometheus.HistogramVec
	quotationSaveFailure *prometheus.CounterVec
	priceMissing         *prometheus.CounterVec
}

var (
	_ interfaces.IQuotationMetrics = (*Metrics)(nil)
	_ pricing.DiagnosticsSink      = (*Metrics)(nil)
)

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// Total HTTP requests partitioned by method, route, and status code
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		httpInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_inflight_requests",
				Help: "Number of HTTP requests currently being served",
			},
		),
		quotationsSaved: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotations_saved_total",
				Help: "Quotations persisted, partitioned by service type",
			},
			[]string{"service_type"},
		),
		quotationAmount: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quotation_total_amount_vnd",
				Help:    "Total amount of persisted quotations in VND",
				Buckets: prometheus.ExponentialBuckets(100_000, 2.5, 10),
			},
			[]string{"service_type"},
		),
		quotationSaveFailure: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotation_save_failures_total",
				Help: "Failed quotation saves, partitioned by the insert that failed",
			},
			[]string{"stage"},
		),
		priceMissing: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_lookup_missing_total",
				Help: "Price lookups that found no configured price",
			},
			[]string{"segment_id", "item_type"},
		),
	}
}

// Middleware records request metrics. Labels use the matched route template
// so path parameters do not blow up cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		m.httpRequestsTotal.With(labels).Inc()
		m.httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) QuotationSaved(serviceType string, totalAmount int64) {
	m.quotationsSaved.WithLabelValues(serviceType).Inc()
	m.quotationAmount.WithLabelValues(serviceType).Observe(float64(totalAmount))
}

func (m *Metrics) QuotationSaveFailed(stage string) {
	m.quotationSaveFailure.WithLabelValues(stage).Inc()
}

// PriceMissing counts misses per segment and item type. Item ids are left
// out of the labels.
func (m *Metrics) PriceMissing(segmentID string, itemType entities.ItemType, _ string) {
	m.priceMissing.WithLabelValues(segmentID, string(itemType)).Inc()
}
