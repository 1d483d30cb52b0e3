package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "citygis_reports_total",
		Help: "Total number of incident reports accepted into both stores",
	})
	ReportFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citygis_report_failures_total",
		Help: "Total number of failed incident reports by stage",
	}, []string{"stage"})
	CompensationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "citygis_compensations_total",
		Help: "Total number of compensating actions issued after a dual-write failure",
	})
	OrphansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citygis_orphans_total",
		Help: "Total number of orphan conditions (failed compensations) by kind",
	}, []string{"kind"})
	OrphansReconciledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "citygis_orphans_reconciled_total",
		Help: "Total number of orphan records repaired by the reconciler",
	})
	NearbyQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "citygis_nearby_queries_total",
		Help: "Total number of radius searches served",
	})
)

func init() {
	prometheus.MustRegister(ReportsTotal)
	prometheus.MustRegister(ReportFailuresTotal)
	prometheus.MustRegister(CompensationsTotal)
	prometheus.MustRegister(OrphansTotal)
	prometheus.MustRegister(OrphansReconciledTotal)
	prometheus.MustRegister(NearbyQueriesTotal)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
