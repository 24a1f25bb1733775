package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Completion outcomes.
const (
	OutcomeOK                = "ok"
	OutcomeMissingCredential = "missing_credential"
	OutcomeProviderError     = "provider_error"
)

var (
	// RequestsTotal counts HTTP requests by method, route, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askexpert_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// CompletionsTotal counts requester calls by persona and outcome.
	CompletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askexpert_completions_total",
		Help: "Completion requests by persona and outcome.",
	}, []string{"persona", "outcome"})

	// CompletionDuration tracks provider latency per persona.
	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "askexpert_completion_duration_seconds",
		Help:    "Time spent waiting for the completion provider.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"persona"})

	// InputChars tracks the distribution of question lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "askexpert_input_chars",
		Help:    "Number of characters in submitted questions.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
)
