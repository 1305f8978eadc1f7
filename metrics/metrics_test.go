package metrics_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/flightpath/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value reads the current value of a counter or gauge.
func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}

	return out.GetGauge().GetValue()
}

func TestObserveQuery(t *testing.T) {
	c := metrics.QueriesTotal.WithLabelValues(metrics.OutcomeNoRoute)
	before := value(t, c)
	metrics.ObserveQuery(metrics.OutcomeNoRoute, time.Now())
	assert.Equal(t, before+1, value(t, c))
}

func TestSetNetworkSize(t *testing.T) {
	metrics.SetNetworkSize(6, 7)
	assert.Equal(t, 6.0, value(t, metrics.Airports))
	assert.Equal(t, 7.0, value(t, metrics.Routes))
}
