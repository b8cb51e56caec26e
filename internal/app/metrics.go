package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vk/protgraph/internal/engine"
)

// Query outcome label values.
const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// metrics holds the collectors of one App. Each App owns its registry so
// that several instances can coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	indexEntries  *prometheus.GaugeVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,

		// queriesTotal counts queries by operation and by whether anything was found
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "protgraph_queries_total",
			Help: "Total queries by operation and result",
		}, []string{"operation", "result"}),

		// queryDuration tracks query latency
		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "protgraph_query_duration_seconds",
			Help:    "Query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10us to ~330ms
		}, []string{"operation"}),

		// indexEntries reports table and index sizes after loading
		indexEntries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "protgraph_index_entries",
			Help: "Number of rows per table and keys per derived index",
		}, []string{"index"}),
	}
}

// observeQuery records one finished query.
func (m *metrics) observeQuery(cmd Command, hit bool, seconds float64) {
	result := resultMiss
	if hit {
		result = resultHit
	}
	m.queriesTotal.WithLabelValues(string(cmd), result).Inc()
	m.queryDuration.WithLabelValues(string(cmd)).Observe(seconds)
}

// setIndexSizes publishes the engine statistics as gauges.
func (m *metrics) setIndexSizes(s engine.Stats) {
	for name, n := range map[string]int{
		"protein_nodes":      s.ProteinNodes,
		"go_term_nodes":      s.GoTermNodes,
		"edges":              s.Edges,
		"identifier_records": s.IdentifierRecords,
		"details":            s.DetailsEntries,
		"uuids":              s.UUIDEntries,
		"aliases":            s.AliasEntries,
		"names":              s.NameEntries,
	} {
		m.indexEntries.WithLabelValues(name).Set(float64(n))
	}
}
