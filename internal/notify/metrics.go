package notify

import "github.com/zeromicro/go-zero/core/metric"

var (
	renderDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_survey",
		Subsystem: "notify",
		Name:      "render_duration_seconds",
		Help:      "Notification render duration in seconds",
		Labels:    []string{"template"},
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
	})

	emailsSent = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_survey",
		Subsystem: "notify",
		Name:      "emails_total",
		Help:      "Notification emails by outcome",
		Labels:    []string{"result"},
	})

	htmlIssues = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_survey",
		Subsystem: "notify",
		Name:      "html_issues_total",
		Help:      "Mail-client compatibility issues found in rendered notifications",
		Labels:    []string{"rule"},
	})
)
