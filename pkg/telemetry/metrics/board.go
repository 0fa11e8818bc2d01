package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"askboard-hq/askboard/pkg/config"
)

// Prune trigger labels.
const (
	TriggerRequest  = "request"
	TriggerSchedule = "schedule"
	TriggerStartup  = "startup"
)

// BoardMetrics tracks metrics for the question board lifecycle.
type BoardMetrics struct {
	questionsCreated prometheus.Counter
	questionsPruned  *prometheus.CounterVec
	pruneRuns        *prometheus.CounterVec
	questionsVisible prometheus.Gauge
}

// NewBoardMetrics creates and registers board lifecycle metrics with the
// provided registry.
func NewBoardMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *BoardMetrics {
	bm := &BoardMetrics{
		questionsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "questions_created_total",
				Help:      "Total number of questions created",
			},
		),

		questionsPruned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "questions_pruned_total",
				Help:      "Total number of questions removed by retention",
			},
			[]string{"trigger"},
		),

		pruneRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "prune_runs_total",
				Help:      "Total number of retention passes",
			},
			[]string{"trigger", "outcome"},
		),

		questionsVisible: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "questions_visible",
				Help:      "Number of questions currently on the board",
			},
		),
	}

	registry.MustRegister(
		bm.questionsCreated,
		bm.questionsPruned,
		bm.pruneRuns,
		bm.questionsVisible,
	)

	return bm
}

// RecordQuestionCreated increments the created-questions counter.
func (c *Collector) RecordQuestionCreated() {
	if c == nil {
		return
	}
	c.boardMetrics.questionsCreated.Inc()
}

// RecordPrune records one retention pass and its result.
func (c *Collector) RecordPrune(trigger string, deleted int64, err error) {
	if c == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.boardMetrics.pruneRuns.WithLabelValues(trigger, outcome).Inc()

	if deleted > 0 {
		c.boardMetrics.questionsPruned.WithLabelValues(trigger).Add(float64(deleted))
	}
}

// SetVisibleQuestions updates the board-size gauge.
func (c *Collector) SetVisibleQuestions(n int64) {
	if c == nil {
		return
	}
	c.boardMetrics.questionsVisible.Set(float64(n))
}
