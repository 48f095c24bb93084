package http

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"banking-backoffice/internal/banking"
)

const (
	ctxUserID       = "userID"
	ctxRequestID    = "requestID"
	headerRequestID = "X-Request-ID"
)

func AuthMiddleware(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, 401, "authorization_header_missing", "missing Authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, 401, "authorization_header_invalid", "expected a Bearer token")
			return
		}

		claims, err := sessions.Parse(parts[1])
		if err != nil {
			abort(c, 401, "invalid_token", "session is invalid or expired")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Next()
	}
}

// requestID reuses the caller's X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Response: banking.Response{Status: banking.StatusFailure, Message: message, StatusCode: status},
		Error:    code,
	})
}

func userID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}
