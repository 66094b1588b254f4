package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTTPMetricsMiddleware collects request count, duration and in-flight
// metrics for every route.
func HTTPMetricsMiddleware(metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		metrics.RecordHTTPRequest(c.Method(), path, strconv.Itoa(status), time.Since(start))

		return err
	}
}
