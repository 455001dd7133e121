// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key for the request identifier.
const requestIDKey = "request_id"

// RequestID assigns each request an identifier, honoring one supplied by
// the client, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// GetRequestIDFromContext returns the identifier assigned to the request.
func GetRequestIDFromContext(ctx *gin.Context) (string, bool) {
	id, ok := ctx.Get(requestIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}
