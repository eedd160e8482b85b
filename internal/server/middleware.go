package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestMiddleware assigns a request ID, then logs and counts the request.
func (s *Server) requestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := getOrCreateRequestID(c)
		c.Set(requestIDKey, requestID)
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.metrics.requestLatency.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debug("Request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
		)
	}
}

// getOrCreateRequestID returns the caller's X-Request-ID or a fresh UUID,
// echoing it back in the response header.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	return requestID
}

// requestIDFrom returns the ID assigned by requestMiddleware.
func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
