package popup

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "currconv",
		Subsystem: "popup",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"result"},
)

func observeResponse(elapsed time.Duration, result Result) {
	histogramResponseTime.
		WithLabelValues(string(result)).
		Observe(elapsed.Seconds())
}
