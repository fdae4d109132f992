package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fpt/internal/structures"
)

type MetricsProviderInterface interface {
	IncBlocksSeen(n int)
	IncBlocksDropped(reason string)
	IncJourneysParsed(n int)
	IncPricesStored(n int)
	ObserveScrapeDuration(duration time.Duration)
	ObserveStoreDuration(duration time.Duration)
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
}

// Drop reasons for the blocks_dropped counter.
const (
	DropReasonAd    = "ad"
	DropReasonShape = "shape"
	DropReasonParse = "parse"
)

type MetricsProvider struct {
	blocksSeen      prometheus.Counter
	blocksDropped   *prometheus.CounterVec
	journeysParsed  prometheus.Counter
	pricesStored    prometheus.Counter
	scrapeDuration  prometheus.Histogram
	storeDuration   prometheus.Histogram
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func (m *MetricsProvider) IncBlocksSeen(n int) {
	m.blocksSeen.Add(float64(n))
}

func (m *MetricsProvider) IncBlocksDropped(reason string) {
	m.blocksDropped.WithLabelValues(reason).Inc()
}

func (m *MetricsProvider) IncJourneysParsed(n int) {
	m.journeysParsed.Add(float64(n))
}

func (m *MetricsProvider) IncPricesStored(n int) {
	m.pricesStored.Add(float64(n))
}

func (m *MetricsProvider) ObserveScrapeDuration(duration time.Duration) {
	m.scrapeDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveStoreDuration(duration time.Duration) {
	m.storeDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		blocksSeen: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fpt_blocks_seen_total",
			Help: "Total number of raw result blocks retrieved",
		}),

		blocksDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fpt_blocks_dropped_total",
			Help: "Total number of result blocks dropped before storage",
		}, []string{"reason"}),

		journeysParsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fpt_journeys_parsed_total",
			Help: "Total number of journeys parsed from result blocks",
		}),

		pricesStored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fpt_prices_stored_total",
			Help: "Total number of price observations written",
		}),

		scrapeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fpt_scrape_duration_seconds",
			Help:    "Duration of one page scrape in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		storeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fpt_store_duration_seconds",
			Help:    "Duration of one storage flush in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fpt_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fpt_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "fpt_tracked_searches",
		Help: "Number of searches the scheduler re-runs each interval",
	}, func() float64 {
		return float64(len(conf.Searches))
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncBlocksSeen(_ int)                              {}
func (n *noopMetrics) IncBlocksDropped(_ string)                        {}
func (n *noopMetrics) IncJourneysParsed(_ int)                          {}
func (n *noopMetrics) IncPricesStored(_ int)                            {}
func (n *noopMetrics) ObserveScrapeDuration(_ time.Duration)            {}
func (n *noopMetrics) ObserveStoreDuration(_ time.Duration)             {}
func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
