package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"xerosync/internal/logger"
)

// ErrorLocalKey holds the internal error text a handler chose not to expose
// to the client. Logger adds it to the access log line.
const ErrorLocalKey = "internal_error"

// Logger writes one access log entry per request with request_id, method,
// path, status and latency. 5xx responses log at error level, 4xx at warn.
func Logger(log *zap.Logger) fiber.Handler {
	log = logger.OrNop(log).With(zap.String("component", "http"))

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		level := zapcore.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case status >= fiber.StatusBadRequest:
			level = zapcore.WarnLevel
		}

		if ce := log.Check(level, "http request"); ce != nil {
			rid, _ := c.Locals(RequestIDLocalKey).(string)
			fields := []zap.Field{
				zap.String("request_id", rid),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
			}
			if msg, ok := c.Locals(ErrorLocalKey).(string); ok && msg != "" {
				fields = append(fields, zap.String("error", msg))
			}
			ce.Write(fields...)
		}
		return err
	}
}
