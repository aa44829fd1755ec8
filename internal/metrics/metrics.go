// Package metrics holds the process-wide Prometheus collectors for the queue and apply runs.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeCompleted   = "completed"
	OutcomeRetried     = "retried"
	OutcomeFailed      = "failed"
	OutcomeInterrupted = "interrupted"
)

var (
	jobsEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fixpack_jobs_enqueued_total",
		Help: "Jobs submitted to the queue",
	}, []string{"class", "deduplicated"})

	jobsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fixpack_jobs_claimed_total",
		Help: "Jobs claimed by a worker",
	}, []string{"class"})

	jobsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fixpack_jobs_finished_total",
		Help: "Job executions by outcome",
	}, []string{"class", "outcome"})

	runsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fixpack_apply_runs_finished_total",
		Help: "Apply runs reaching a terminal status",
	}, []string{"status"})

	repairLabels = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fixpack_repair_labels_total",
		Help: "Repair labels added to pull requests",
	})

	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fixpack_job_duration_seconds",
		Help:    "Job handler duration in seconds",
		Buckets: []float64{0.5, 1, 5, 15, 60, 300, 900, 1800},
	})
)

func IncJobEnqueued(class string, deduplicated bool) {
	jobsEnqueued.WithLabelValues(class, strconv.FormatBool(deduplicated)).Inc()
}

func IncJobClaimed(class string) {
	jobsClaimed.WithLabelValues(class).Inc()
}

// IncJobFinished counts one handler execution by outcome.
func IncJobFinished(class, outcome string) {
	jobsFinished.WithLabelValues(class, outcome).Inc()
}

// IncApplyRunFinished counts an apply run reaching a terminal status.
func IncApplyRunFinished(status string) {
	runsFinished.WithLabelValues(status).Inc()
}

func IncRepairLabelAdded() {
	repairLabels.Inc()
}

// ObserveJobDuration records how long a handler ran.
func ObserveJobDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	jobDuration.Observe(d.Seconds())
}

// Handler serves the default registry, which also carries the Go runtime and process collectors.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
