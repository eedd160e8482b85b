package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are the Prometheus collectors of one Server.
type metrics struct {
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	searchDuration prometheus.Histogram
	searches       *prometheus.CounterVec
	graphNodes     prometheus.Gauge
	graphEdges     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dijkstar_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		requestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dijkstar_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dijkstar_find_path_duration_seconds",
			Help:    "Time spent in shortest-path searches",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dijkstar_find_path_total",
			Help: "Shortest-path searches by result (found, no_path)",
		}, []string{"result"}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "dijkstar_graph_nodes",
			Help: "Nodes in the served graph",
		}),
		graphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "dijkstar_graph_edges",
			Help: "Edges in the served graph",
		}),
	}
}

func (m *metrics) setGraph(info GraphInfo) {
	m.graphNodes.Set(float64(info.NodeCount))
	m.graphEdges.Set(float64(info.EdgeCount))
}
