// Package gateway is the HTTP presentation layer over the POS core. It
// parses raw form input into validated domain values and maps domain errors
// onto the transport.
package gateway

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
	reorderapp "github.com/dwikikusuma/pharmacy-pos/internal/reorder/app"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	log      *slog.Logger
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	reorder  *reorderapp.Service
}

func NewServer(log *slog.Logger, catalog *catalogapp.Service, cart *cartapp.Service, checkout *checkoutapp.Service, reorder *reorderapp.Service) *Server {
	return &Server{
		log:      log,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		reorder:  reorder,
	}
}

func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/items", s.listItems)
		v1.POST("/items", s.createItem)
		v1.GET("/items/:id", s.getItem)
		v1.PATCH("/items/:id", s.updateItem)
		v1.DELETE("/items/:id", s.deleteItem)

		v1.GET("/cart", s.getCart)
		v1.POST("/cart/items", s.addCartItem)
		v1.PATCH("/cart/items/:id", s.updateCartItem)
		v1.DELETE("/cart/items/:id", s.removeCartItem)

		v1.POST("/checkout", s.completePurchase)
		v1.GET("/checkout/receipt", s.lastReceipt)

		v1.GET("/reorder/low-stock", s.lowStock)
		v1.POST("/reorder/items/:id/order", s.placeOrder)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()

		s.log.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
