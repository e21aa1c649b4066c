package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterPlans.WithLabelValues("ok").Inc()
	m.CounterPlans.WithLabelValues("timeout").Add(2)
	m.CounterMetricRecords.WithLabelValues("added").Inc()
	m.GaugeActiveSessions.Set(3)
	m.HistPlanDuration.Observe(1.5)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterPlans.WithLabelValues("ok")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterPlans.WithLabelValues("timeout")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.GaugeActiveSessions))

	var hist dto.Metric
	require.NoError(t, m.HistPlanDuration.Write(&hist))
	assert.Equal(t, uint64(1), hist.GetHistogram().GetSampleCount())
	assert.Equal(t, 1.5, hist.GetHistogram().GetSampleSum())

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["fitcoach_test_server_plans_total"])
	assert.True(t, names["fitcoach_test_server_metric_records_total"])
	assert.True(t, names["fitcoach_test_server_active_sessions"])
}

func TestSetupPrometheus(t *testing.T) {
	reg := SetupPrometheus()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
