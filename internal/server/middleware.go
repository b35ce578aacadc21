package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/metrics"
)

// metricsMiddleware records count and latency per route pattern, so /api/datasets/:name is one series.
func (s *Server) metricsMiddleware(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()
	if err != nil {
		// let the error handler set the final status before it is observed
		if herr := s.app.Config().ErrorHandler(c, err); herr != nil {
			return herr
		}
	}

	status := strconv.Itoa(c.Response().StatusCode())
	path := c.Route().Path
	elapsed := time.Since(start)

	metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(c.Method(), path, status).Observe(elapsed.Seconds())

	s.log.Debug("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("status", status),
		zap.Duration("elapsed", elapsed))
	return nil
}
