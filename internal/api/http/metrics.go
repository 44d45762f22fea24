package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	OrdersPlaced    prometheus.Counter
	OrdersCancelled prometheus.Counter
	OrderFailures   prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_orders_placed_total",
			Help: "Orders accepted by the exchange.",
		}),
		OrdersCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_orders_cancelled_total",
			Help: "Orders cancelled through the dashboard.",
		}),
		OrderFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_order_failures_total",
			Help: "Order placements rejected by the exchange.",
		}),
	}
}
