package rates

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	counterPolicyState = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "currconv",
			Subsystem: "rates",
			Name:      "policy_state_total",
		},
		[]string{"state"},
	)
	counterRefresh = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "currconv",
			Subsystem: "rates",
			Name:      "refresh_total",
		},
		[]string{"success"},
	)
)

func observeState(state State) {
	counterPolicyState.WithLabelValues(string(state)).Inc()
}

func observeRefresh(success bool) {
	counterRefresh.WithLabelValues(strconv.FormatBool(success)).Inc()
}
