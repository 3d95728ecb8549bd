package middleware

import (
	"time"

	"haulhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Logger emits one structured line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		logger.L.Info("http request",
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Float64("latency_ms", float64(latency.Microseconds())/1000.0),
			logger.String("ip", c.ClientIP()),
		)
	}
}
