package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_rooms_created_total",
		Help: "Rooms created since process start",
	})

	LiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signal_rooms_live",
		Help: "Rooms currently owned by the lobby",
	})

	ConnectionsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_connections_opened_total",
		Help: "Websocket connections accepted",
	})

	ActionsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_actions_discarded_total",
		Help: "Inbound actions dropped for arriving in the wrong phase or from the wrong role",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
