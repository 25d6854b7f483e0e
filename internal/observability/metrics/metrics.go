// Package metrics exposes application-level prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes application-level instruments.
type Metrics struct {
	QuotesComputed     prometheus.Counter
	DocumentsConverted *prometheus.CounterVec
	InvoicesPaid       prometheus.Counter
	OverdueSweepRuns   prometheus.Counter
}

// New registers the domain instruments against the provided registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		QuotesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brushworks",
			Name:      "quotes_computed_total",
			Help:      "Number of quote breakdowns computed.",
		}),
		DocumentsConverted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brushworks",
			Name:      "documents_converted_total",
			Help:      "Number of pipeline document conversions, by conversion.",
		}, []string{"conversion"}),
		InvoicesPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brushworks",
			Name:      "invoices_paid_total",
			Help:      "Number of invoices auto-promoted to paid.",
		}),
		OverdueSweepRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brushworks",
			Name:      "overdue_sweep_runs_total",
			Help:      "Number of overdue-invoice sweep executions.",
		}),
	}
	reg.MustRegister(m.QuotesComputed, m.DocumentsConverted, m.InvoicesPaid, m.OverdueSweepRuns)
	return m
}
