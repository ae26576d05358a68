package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jvantuyl/extra-enum/core/actor"
	"github.com/jvantuyl/extra-enum/core/recv"
	"github.com/jvantuyl/extra-enum/core/seq"
)

func TestActorMetrics_registers_and_records(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewActorMetrics(reg)

	tm := m.ReceiveWait()
	tm.ObserveDuration()
	m.ReceiveResult("p-1", true)
	m.ReceiveResult("p-1", false)
	m.ItemYielded("some.Type")
	m.MailboxDepth("p-1", 3)
	m.SchedulerInflight("p-1", 1)
	m.SchedulerTaskCompleted(true)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	require.True(t, names["extra_enum_receive_wait_seconds"])
	require.True(t, names["extra_enum_receives_total"])
	require.True(t, names["extra_enum_items_total"])
	require.True(t, names["extra_enum_mailbox_depth"])
	require.True(t, names["extra_enum_scheduler_inflight"])
	require.True(t, names["extra_enum_scheduler_tasks_total"])
}

func TestActorMetrics_end_to_end(t *testing.T) {
	reg := prometheus.NewRegistry()

	p := actor.Spawn(actor.Options{
		Context: t.Context(),
		Metrics: NewActorMetrics(reg),
	}, func(c *actor.Ctx) error {
		spec, err := recv.Single(func(m any) bool { return true }, recv.WithDelay(100*time.Millisecond))
		if err != nil {
			return err
		}
		_ = seq.Collect(c.Sequence(spec))
		return nil
	})

	require.NoError(t, p.Send(t.Context(), "hello"))
	<-p.Done()
	require.NoError(t, p.Err())

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}
