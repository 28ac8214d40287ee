package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jname_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	})

	FilesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jname_files_scanned_total",
		Help: "Total number of Java files scanned.",
	})

	NamesClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jname_names_classified_total",
		Help: "Total number of name occurrences classified, by role.",
	}, []string{"role"})

	ReferenceCategories = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jname_reference_categories_total",
		Help: "Total number of reference names per syntactic category.",
	}, []string{"category"})

	UnsupportedConstructs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jname_unsupported_constructs_total",
		Help: "Total number of name occurrences in syntactic positions outside the modeled rule tables.",
	})
)
