package usecase

import "github.com/prometheus/client_golang/prometheus"

var (
	cycleResetsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymkeeper",
		Subsystem: "payments",
		Name:      "cycle_resets_total",
		Help:      "Number of monthly bulk resets that completed.",
	})

	membersResetCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymkeeper",
		Subsystem: "payments",
		Name:      "members_reset_total",
		Help:      "Number of member payment flags cleared by bulk resets.",
	})

	resetFailuresCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymkeeper",
		Subsystem: "payments",
		Name:      "cycle_reset_failures_total",
		Help:      "Number of bulk resets aborted by a store failure.",
	})

	togglesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gymkeeper",
		Subsystem: "payments",
		Name:      "toggles_total",
		Help:      "Number of manual payment toggles, labeled by the resulting state.",
	}, []string{"paid"})

	resetDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gymkeeper",
		Subsystem: "payments",
		Name:      "cycle_reset_duration_seconds",
		Help:      "Time spent rewriting member flags during a bulk reset.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(cycleResetsCounter, membersResetCounter, resetFailuresCounter, togglesCounter, resetDuration)
}
