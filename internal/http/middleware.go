package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go.ngs.io/r134a-api/internal/observability"
)

// requestLogger logs one entry per request at a level chosen by status.
// Errors attached with c.Error are appended to the message.
func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		entry := logger.WithFields(logrus.Fields{
			"status":    status,
			"method":    c.Request.Method,
			"route":     route,
			"latencyMs": latency.Milliseconds(),
			"bytes":     max(c.Writer.Size(), 0),
		})

		msg := fmt.Sprintf("%s %s -> %d", c.Request.Method, route, status)
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			msg += ": " + strings.TrimSpace(errs.String())
		}

		level := logrus.DebugLevel
		switch {
		case status >= http.StatusInternalServerError || len(c.Errors) > 0:
			level = logrus.ErrorLevel
		case status >= http.StatusBadRequest:
			level = logrus.WarnLevel
		}
		entry.Log(level, msg)
	}
}

func recoverJSON(logger logrus.FieldLogger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.WithField("path", c.Request.URL.Path).Errorf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("internal server error: %v", recovered),
		})
	}
}

func requestTimer(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
