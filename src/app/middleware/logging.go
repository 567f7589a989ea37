package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"inkpress/src/infra/logger"
)

// Logging emits one structured line per request. Bodies are never logged:
// they carry passwords, tokens and unpublished drafts.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		reqLog := logger.WithRequestID(log, GetRequestID(c))
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
			"bytes", c.Writer.Size(),
		}
		if query != "" {
			attrs = append(attrs, "query", query)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			logger.Error(reqLog, "request completed", attrs...)
		case status >= 400:
			logger.Warn(reqLog, "request completed", attrs...)
		default:
			reqLog.Info("request completed", attrs...)
		}
	}
}
