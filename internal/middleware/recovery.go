package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var serverErrorBody = ginext.H{"message": "server error"}

// Recovery превращает панику обработчика в 500 с общим телом ошибки.
// http.ErrAbortHandler пробрасывается дальше, его обрабатывает net/http.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			userID := ""
			if id := IdentityFrom(c.Request.Context()); id != nil {
				userID = id.ID
			}

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.Any("panic", rec),
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("user_id", userID),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, serverErrorBody)
		}()

		c.Next()
	}
}
