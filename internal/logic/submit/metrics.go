package submit

import "github.com/zeromicro/go-zero/core/metric"

var (
	submissionsTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_survey",
		Subsystem: "submit",
		Name:      "submissions_total",
		Help:      "Survey submissions by role and result",
		Labels:    []string{"role", "result"},
	})

	stepFailures = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_survey",
		Subsystem: "submit",
		Name:      "step_failures_total",
		Help:      "Submission failures by step",
		Labels:    []string{"step"},
	})

	submitDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_survey",
		Subsystem: "submit",
		Name:      "duration_seconds",
		Help:      "End-to-end submission duration in seconds",
		Labels:    []string{"result"},
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
)
