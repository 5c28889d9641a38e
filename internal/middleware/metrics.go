package middleware

//go:generate go tool mockery

import (
	"cmp"
	"time"

	"github.com/labstack/echo/v4"

	"badgeserver/internal/metrics"
)

const routeKey = "badge_route"

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// SetRoute names the badge route that served the request, so metrics group
// by route instead of by the catch-all path.
func SetRoute(c echo.Context, name string) {
	c.Set(routeKey, name)
}

func routeName(c echo.Context) string {
	if name, ok := c.Get(routeKey).(string); ok && name != "" {
		return name
	}
	return cmp.Or(c.Path(), "/")
}

func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			path := cmp.Or(c.Path(), "/")
			statusCode := c.Response().Status

			var errStr string
			if err != nil {
				errStr = err.Error()
				if he, ok := err.(*echo.HTTPError); ok {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Route:      routeName(c),
				Path:       path,
				StatusCode: statusCode,
				DurationMs: float64(duration.Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}
