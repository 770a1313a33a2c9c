package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", c.Path(),
				"status", res.Status,
				"latency", time.Since(start),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}

			switch {
			case res.Status >= 500:
				log.Error("request", attrs...)
			case res.Status >= 400:
				log.Warn("request", attrs...)
			default:
				log.Info("request", attrs...)
			}

			return nil
		}
	}
}
