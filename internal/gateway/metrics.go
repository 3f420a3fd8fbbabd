package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pos_http_requests_total",
	Help: "HTTP requests processed, by method, route and status.",
}, []string{"method", "route", "status"})
