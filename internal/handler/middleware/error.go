package middleware

import (
	"log/slog"
	"net/http"

	"grab-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public httperr.Response attached by a handler.
// Handlers that already wrote a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// Recovery turns a panic into a 500 carrying the request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"panic", rec,
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
