package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is gin's request logger with the request id in every line
func Logger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
		Formatter: func(p gin.LogFormatterParams) string {
			id, _ := p.Keys[requestIDKey].(string)
			if id == "" {
				id = "-"
			}
			return fmt.Sprintf("[HTTP] %s | %s | %3d | %13v | %15s | %-7s %#v\n",
				p.TimeStamp.Format(time.RFC3339),
				id,
				p.StatusCode,
				p.Latency,
				p.ClientIP,
				p.Method,
				p.Path,
			)
		},
	})
}
