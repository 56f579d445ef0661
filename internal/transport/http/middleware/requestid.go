package middleware

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/requestid"
)

// RequestID threads a request ID through the request context and echoes it
// on the response. A caller-supplied requestid.Header value wins over a
// freshly generated one, so IDs survive proxy hops.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		c.Request = c.Request.WithContext(requestid.WithRequestID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}
