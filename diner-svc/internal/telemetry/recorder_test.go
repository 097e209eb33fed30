package telemetry

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RemoteFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	rec := NewRecorder(log, prometheus.NewRegistry())

	rec.RemoteFailure(OpPlaceOrder, errors.New("connection refused"), logrus.Fields{"order": "ORD-1"})
	rec.RemoteFailure(OpPlaceOrder, errors.New("timeout"), nil)
	rec.RemoteFailure(OpChat, errors.New("500"), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.remoteFailures.WithLabelValues(OpPlaceOrder)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.remoteFailures.WithLabelValues(OpChat)))

	require.Len(t, hook.Entries, 3)
	first := hook.Entries[0]
	assert.Equal(t, logrus.WarnLevel, first.Level)
	assert.Equal(t, "ORD-1", first.Data["order"])
	assert.Equal(t, OpPlaceOrder, first.Data["op"])
}

func TestRecorder_Counters(t *testing.T) {
	log, _ := test.NewNullLogger()
	reg := prometheus.NewRegistry()
	rec := NewRecorder(log, reg)

	rec.OrderPlaced("ORD-1", 4)
	rec.NutritionFallback("remote_error")
	rec.PopupShown()
	rec.PopupShown()

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ordersPlaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.nutritionFallbacks.WithLabelValues("remote_error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.popupShown))

	assert.ElementsMatch(t, []string{
		"foodfriend_orders_placed_total",
		"foodfriend_nutrition_fallbacks_total",
		"foodfriend_popup_shown_total",
	}, gatheredNames(t, reg))

	rec.RemoteFailure(OpNutrition, errors.New("down"), nil)
	assert.Contains(t, gatheredNames(t, reg), "foodfriend_remote_failures_total")
	assert.Len(t, gatheredNames(t, reg), 4)
}

// gatheredNames lists the families the registry exports. A vector with no
// observed labels exports nothing.
func gatheredNames(t *testing.T, reg *prometheus.Registry) []string {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	return names
}
