package expenses

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "ledger",
		Subsystem: "store_client",
		Name:      "histogram_request_time_seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	},
	[]string{"op", "status"},
)

// observeRequest records a call; status 0 means the request never got a response.
func observeRequest(op string, status int, elapsed time.Duration) {
	histogramRequestTime.
		WithLabelValues(op, strconv.Itoa(status)).
		Observe(elapsed.Seconds())
}
