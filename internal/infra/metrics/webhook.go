package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(webhookDeliveries)
}

var webhookDeliveries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "funnel_webhook_deliveries_total",
		Help: "Automation webhook deliveries by event and status.",
	},
	[]string{"event", "status"},
)

func IncWebhookDelivery(event string, ok bool) {
	status := "succeeded"
	if !ok {
		status = "failed"
	}
	webhookDeliveries.WithLabelValues(norm(event), status).Inc()
}
