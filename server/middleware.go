package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// RequestTracking tags every request with an id, echoes it in the
// X-Request-ID header and logs one line per request once it completes.
func RequestTracking(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level, sentryLevel := "INFO", sentry.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level, sentryLevel = "ERROR", sentry.LevelError
		case status >= http.StatusBadRequest:
			level, sentryLevel = "WARN", sentry.LevelWarning
		}
		logger.Printf("[%s] %s %s status=%d duration_ms=%d request_id=%s",
			level, c.Request.Method, c.Request.URL.Path, status, time.Since(start).Milliseconds(), requestID)

		// Only present when the Sentry middleware is installed.
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.AddBreadcrumb(&sentry.Breadcrumb{
				Type:     "http",
				Category: "request",
				Message:  fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
				Level:    sentryLevel,
				Data:     map[string]interface{}{"request_id": requestID},
			}, nil)
		}
	}
}
