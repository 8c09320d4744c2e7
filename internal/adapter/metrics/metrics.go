package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type OrderMetrics struct {
	checkouts  *prometheus.CounterVec
	reconciles *prometheus.CounterVec
	prints     *prometheus.CounterVec
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"status"})
	reconciles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "reconcile_total",
		Help:      "Payment webhook reconciliations by result.",
	}, []string{"result"})
	prints := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "receipt_prints_total",
		Help:      "Receipt print attempts by mode and outcome.",
	}, []string{"mode", "status"})

	reg.MustRegister(checkouts, reconciles, prints)
	return &OrderMetrics{checkouts: checkouts, reconciles: reconciles, prints: prints}
}

func (m *OrderMetrics) CheckoutProcessed(status string) {
	m.checkouts.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) ReconcileProcessed(result string) {
	m.reconciles.WithLabelValues(result).Inc()
}

func (m *OrderMetrics) ReceiptPrinted(mode string) {
	m.prints.WithLabelValues(mode, "ok").Inc()
}

func (m *OrderMetrics) PrintFailed(mode string) {
	m.prints.WithLabelValues(mode, "failed").Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
