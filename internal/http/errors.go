package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"banking-backoffice/internal/banking"
)

type errorResponse struct {
	banking.Response
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// statusFor maps service errors to an HTTP status and a snake_case code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, banking.ErrInvalidAmount),
		errors.Is(err, banking.ErrInvalidPeriod),
		errors.Is(err, banking.ErrInvalidDate),
		errors.Is(err, banking.ErrInvalidPrefix),
		errors.Is(err, banking.ErrSameAccount):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, banking.ErrInvalidSession):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, banking.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, banking.ErrAccountNotFound):
		return http.StatusNotFound, "account_not_found"
	case errors.Is(err, banking.ErrDuplicateUser):
		return http.StatusConflict, "user_already_exists"
	case errors.Is(err, banking.ErrTokenExhausted):
		return http.StatusServiceUnavailable, "token_exhausted"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	}
	return http.StatusInternalServerError, "internal_error"
}

func (s *Server) fail(c *gin.Context, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status >= 500 {
		s.logger.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(ctxRequestID),
			"error", err,
		)
		message = http.StatusText(status)
	}
	abort(c, status, code, message)
}

func (s *Server) badRequest(c *gin.Context, details []FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Response: banking.Response{
			Status:     banking.StatusFailure,
			Message:    "validation failed",
			StatusCode: http.StatusBadRequest,
		},
		Error:   "invalid_request",
		Details: details,
	})
}
