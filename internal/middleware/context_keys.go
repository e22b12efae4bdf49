package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the key used to store the request id in contexts.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request id from the Gin context.
// It returns the id and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	idVal, exists := c.Get(string(requestIDKey))
	if !exists {
		return GetRequestIDFromCtx(c.Request.Context())
	}
	id, ok := idVal.(string)
	return id, ok
}

// GetRequestIDFromCtx retrieves the request id from a request context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
