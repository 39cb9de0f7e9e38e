package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs one line per HTTP request.
// It also stores a request-scoped logger in the request context so that
// use cases and adapters can retrieve it with logger.FromContext.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := GetRequestID(c)
			reqLog := log
			if reqID != "" {
				reqLog = log.WithRequestID(reqID)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(reqLog.IntoContext(req.Context())))

			if err := next(c); err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			duration := time.Since(start)
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Already handled via c.Error()
			return nil
		}
	}
}
