package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts finished priority searches by outcome.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mutagen_search_total",
		Help: "Finished priority searches by outcome",
	}, []string{"outcome"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mutagen_search_duration_seconds",
		Help:    "Priority search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	searchExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mutagen_search_expansions",
		Help:    "Frontier pops per priority search",
		Buckets: []float64{1, 10, 50, 100, 500, 1000, 2500, 5000},
	})

	// filterRemovedTotal counts reagents dropped by FilterReagents.
	filterRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mutagen_filter_removed_total",
		Help: "Reagents removed as useless before searching",
	})

	// solveTotal counts solver runs by result: found, no_path, no_starts.
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mutagen_solve_total",
		Help: "Solver runs by result",
	}, []string{"result"})
)

func observeSearch(r StartResult) {
	searchTotal.WithLabelValues(r.Reason.String()).Inc()
	searchDuration.Observe(r.Elapsed.Seconds())
	searchExpansions.Observe(float64(r.Expansions))
}
