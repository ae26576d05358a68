package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jvantuyl/extra-enum/core/actor"
	"github.com/jvantuyl/extra-enum/core/metrics"
)

// actorMetrics implements actor.ActorMetrics using Prometheus.
type actorMetrics struct {
	receiveWait         prometheus.Histogram
	receivesTotal       *prometheus.CounterVec
	itemsTotal          *prometheus.CounterVec
	mailboxDepth        *prometheus.GaugeVec
	schedulerInflight   *prometheus.GaugeVec
	schedulerTasksTotal *prometheus.CounterVec
}

// NewActorMetrics creates a new Prometheus implementation of
// actor.ActorMetrics and registers its collectors with reg.
func NewActorMetrics(reg prometheus.Registerer) actor.ActorMetrics {
	m := &actorMetrics{
		receiveWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "extra_enum_receive_wait_seconds",
			Help:    "Time spent blocked in a selective receive",
			Buckets: defaultBuckets,
		}),

		receivesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extra_enum_receives_total",
			Help: "Total number of selective receives by outcome",
		}, []string{"proc_id", "matched"}),

		itemsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extra_enum_items_total",
			Help: "Total number of items yielded to sequence consumers",
		}, []string{"message_type"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "extra_enum_mailbox_depth",
			Help: "Current inbox queue depth",
		}, []string{"proc_id"}),

		schedulerInflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "extra_enum_scheduler_inflight",
			Help: "Number of concurrent scheduled tasks",
		}, []string{"proc_id"}),

		schedulerTasksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extra_enum_scheduler_tasks_total",
			Help: "Total number of scheduled tasks completed",
		}, []string{"success"}),
	}

	reg.MustRegister(
		m.receiveWait,
		m.receivesTotal,
		m.itemsTotal,
		m.mailboxDepth,
		m.schedulerInflight,
		m.schedulerTasksTotal,
	)

	return m
}

func (m *actorMetrics) ReceiveWait() metrics.Timer {
	return newTimer(m.receiveWait)
}

func (m *actorMetrics) ReceiveResult(procID string, matched bool) {
	m.receivesTotal.WithLabelValues(procID, boolToStr(matched)).Inc()
}

func (m *actorMetrics) ItemYielded(msgType string) {
	m.itemsTotal.WithLabelValues(msgType).Inc()
}

func (m *actorMetrics) MailboxDepth(procID string, depth int) {
	m.mailboxDepth.WithLabelValues(procID).Set(float64(depth))
}

func (m *actorMetrics) SchedulerInflight(procID string, count int) {
	m.schedulerInflight.WithLabelValues(procID).Set(float64(count))
}

func (m *actorMetrics) SchedulerTaskCompleted(success bool) {
	m.schedulerTasksTotal.WithLabelValues(boolToStr(success)).Inc()
}

var _ actor.ActorMetrics = (*actorMetrics)(nil)
