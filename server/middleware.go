package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs each request with method, path, status and latency.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(started),
		}
		if status >= 500 {
			logger.Error("request failed", attrs...)
		} else if status >= 400 {
			logger.Warn("request rejected", attrs...)
		} else {
			logger.Info("request served", attrs...)
		}
	}
}
