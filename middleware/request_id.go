package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wildcam/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求生成ID（上游已带则沿用），写入响应头和 context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Writer.Header().Set(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
