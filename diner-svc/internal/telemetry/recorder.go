// Package telemetry makes swallowed failures observable. Remote calls that
// fall back or give up report here instead of surfacing to the diner.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Operation names used as the op label.
const (
	OpPlaceOrder = "place_order"
	OpNutrition  = "nutrition"
	OpGreeting   = "chat_greeting"
	OpChat       = "chat_message"
)

// Reporter receives the side effects the diner never sees.
type Reporter interface {
	RemoteFailure(op string, err error, fields logrus.Fields)
	OrderPlaced(orderID string, table int)
	NutritionFallback(reason string)
	PopupShown()
}

var _ Reporter = (*Recorder)(nil)

type Recorder struct {
	log logrus.FieldLogger

	remoteFailures     *prometheus.CounterVec
	ordersPlaced       prometheus.Counter
	nutritionFallbacks *prometheus.CounterVec
	popupShown         prometheus.Counter
}

// NewRecorder registers its collectors on registry.
func NewRecorder(log logrus.FieldLogger, registry prometheus.Registerer) *Recorder {
	r := &Recorder{
		log: log,
		remoteFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foodfriend_remote_failures_total",
				Help: "Remote calls that failed and were swallowed",
			},
			[]string{"op"},
		),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodfriend_orders_placed_total",
			Help: "Orders placed by diners",
		}),
		nutritionFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foodfriend_nutrition_fallbacks_total",
				Help: "Nutrition summaries computed from the local table",
			},
			[]string{"reason"},
		),
		popupShown: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodfriend_popup_shown_total",
			Help: "Chat invitations shown",
		}),
	}

	registry.MustRegister(r.remoteFailures, r.ordersPlaced, r.nutritionFallbacks, r.popupShown)
	return r
}

func (r *Recorder) RemoteFailure(op string, err error, fields logrus.Fields) {
	r.remoteFailures.WithLabelValues(op).Inc()
	r.log.WithFields(fields).WithField("op", op).WithError(err).Warn("remote call failed, continuing")
}

func (r *Recorder) OrderPlaced(orderID string, table int) {
	r.ordersPlaced.Inc()
	r.log.WithFields(logrus.Fields{"order": orderID, "table": table}).Info("order placed")
}

func (r *Recorder) NutritionFallback(reason string) {
	r.nutritionFallbacks.WithLabelValues(reason).Inc()
	r.log.WithField("reason", reason).Info("using local nutrition table")
}

func (r *Recorder) PopupShown() {
	r.popupShown.Inc()
}
