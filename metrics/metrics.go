// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnswersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "football_answers_submitted_total",
		Help: "Attendance answers submitted, by answer value.",
	}, []string{"participating"})

	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "football_mvp_votes_cast_total",
		Help: "MVP votes cast or changed.",
	})

	RefreshCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "football_refresh_cycles_total",
		Help: "Full view refresh cycles run by the reactive controller.",
	})

	SignIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "football_sign_ins_total",
		Help: "Successful credential sign-ins.",
	})
)

// Handler serves the default registry, mounted on /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
