// Package metrics declares the Prometheus collectors recorded by the ladder
// engine and the dictionary loader. They register on the default registry
// through promauto and are served by the binary's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts finished searches by outcome
	// (found, not_in_dictionary, no_path, aborted).
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_searches_total",
			Help: "Total number of ladder searches by outcome",
		},
		[]string{"outcome"},
	)

	// ExpansionsTotal counts frontier expansions per search direction.
	ExpansionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordladder_expansions_total",
			Help: "Total number of A* node expansions",
		},
		[]string{"direction"},
	)

	// SearchDuration measures wall time of a search, from the dictionary
	// checks to path materialization.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordladder_search_duration_seconds",
			Help:    "Duration of ladder searches in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	// LadderLength records the number of moves of every ladder found.
	LadderLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordladder_ladder_moves",
			Help:    "Number of moves in returned ladders",
			Buckets: prometheus.LinearBuckets(0, 2, 12),
		},
	)

	// DictionaryWords tracks the size of the loaded index.
	DictionaryWords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wordladder_dictionary_entries",
			Help: "Entries and anagram classes in the loaded dictionary",
		},
		[]string{"kind"},
	)
)
