// Package handlers exposes the storefront view server's HTTP endpoints:
// session login/logout plus per-page view state. Handlers are
// transport-thin: they parse input, call the state layer, and translate
// results into HTTP responses.
//
// Conventions:
//   - All error responses return an ErrorResponse with a stable `code`.
//   - `fail()` centralizes error formatting; 5xx responses are logged with
//     request context.
//   - `failFromError()` maps state-layer and gateway errors onto HTTP
//     statuses so every endpoint reports failures the same way.
//
// Example error response:
//
//	HTTP/1.1 401 Unauthorized
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "unauthorized",
//	  "message": "please log in to continue"
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duckshop/go-storefront/internal/gateway"
	"github.com/duckshop/go-storefront/internal/http/middleware"
	"github.com/duckshop/go-storefront/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"order not found"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("view error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(). The router uses it for fallback
// routes without depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failFromError maps a state-layer error onto an HTTP response. Precondition
// failures are 400s, missing or rejected credentials 401s, semantic absence
// 404s, and remote transport failures 502s with the upstream message
// surfaced verbatim.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrNoOrderSelected),
		errors.Is(err, services.ErrPaymentAlreadyRecorded):
		fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case gateway.IsUnauthorized(err):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, gateway.UserMessage(err))
	case gateway.IsNotFound(err):
		fail(c, http.StatusNotFound, ErrCodeNotFound, gateway.UserMessage(err))
	case gateway.IsValidation(err):
		fail(c, http.StatusBadRequest, ErrCodeValidation, gateway.UserMessage(err))
	case gateway.IsTransport(err):
		fail(c, http.StatusBadGateway, ErrCodeUpstream, gateway.UserMessage(err))
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
