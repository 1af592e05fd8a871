package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Served.WithLabelValues("1").Inc()
	m.NoFill.WithLabelValues("1", "no_candidates").Add(2)
	m.Transitions.WithLabelValues("active", "completed").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Served.WithLabelValues("1")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NoFill.WithLabelValues("1", "no_candidates")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "ads_served_total")
	assert.Contains(t, names, "ads_no_fill_total")
	assert.Contains(t, names, "campaign_transitions_total")
}

func TestNew_PanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
