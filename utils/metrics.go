package utils

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

var prefix = os.Getenv("HUFFPACK_METRICS_PREFIX")

var TotalEncodes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_encodes",
		Help: "Total number of encode operations processed",
	},
	[]string{"status"},
)

var TotalDecodes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_decodes",
		Help: "Total number of decode operations processed",
	},
	[]string{"status"},
)

var OperationDurations = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    prefix + "operation_durations",
		Help:    "Total seconds of durations per operation",
		Buckets: []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	},
	[]string{"operation"},
)

var TotalBytesIn = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_bytes_in",
		Help: "Total bytes received per operation",
	},
	[]string{"operation"},
)

var TotalBytesOut = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_bytes_out",
		Help: "Total bytes produced per operation",
	},
	[]string{"operation"},
)

var CompressionRatios = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    prefix + "compression_ratios",
		Help:    "Original to compressed size ratio per encode",
		Buckets: []float64{0.5, 0.8, 1, 1.25, 1.5, 2, 3, 5, 8},
	},
)
