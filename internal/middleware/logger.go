package middleware

import (
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger пишет access-лог. Заголовки и тело запроса не логируются.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		var userID string
		if v, ok := c.Get(identityKey); ok {
			if identity, ok := v.(*domain.Identity); ok {
				userID = identity.ID
			}
		}

		status := c.Writer.Status()
		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case status >= 400:
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
			logger.String("request_id", c.GetString(requestIDKey)),
			logger.String("user_id", userID),
			logger.String("error", c.GetString("error")),
		)
	}
}
