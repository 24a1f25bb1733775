package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/askexpert/pkg/metrics"
)

// Metrics records request count by method, route pattern, and status code.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		settle(c, c.Next())
		metrics.RequestsTotal.WithLabelValues(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return nil
	}
}
