package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	clientdomain "github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"github.com/kossaiRedou/EasInvoice/internal/forms"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
	"github.com/kossaiRedou/EasInvoice/internal/providers/pdf"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string             `json:"type"`
	Message string             `json:"message"`
	Errors  []forms.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

// ErrorHandlingMiddleware converts errors queued on the context into a
// uniform JSON error body. Handlers that already wrote a response,
// such as HTML form redisplay, are left alone.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	errs := &forms.Errors{}
	errs.Add("request", "invalid_request", "invalid request")
	return errs
}

func mapError(err error) (int, errorPayload) {
	if vErr := asFieldErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Fields,
		}
	}

	// Engine failures keep their diagnostic. A swallowed render error
	// is undebuggable because the engine is the only party that knows
	// which glyph, image or layout step broke.
	var renderErr *pdf.RenderError
	if errors.As(err, &renderErr) {
		return http.StatusBadGateway, errorPayload{
			Type:    "render_failed",
			Message: renderErr.Error(),
		}
	}

	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, invoicedomain.ErrInvalidStatus),
		errors.Is(err, clientdomain.ErrInvalidClient),
		errors.Is(err, authdomain.ErrInvalidUsername),
		errors.Is(err, authdomain.ErrInvalidEmail),
		errors.Is(err, authdomain.ErrInvalidPassword):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
		}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, authdomain.ErrUserExists),
		errors.Is(err, invoicedomain.ErrDuplicateNumber),
		errors.Is(err, labeldomain.ErrDuplicateOrder):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		// Foreign-owner lookups land here too; existence is never
		// revealed across accounts.
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, pdf.ErrEngineUnavailable):
		return http.StatusBadGateway, errorPayload{
			Type:    "render_failed",
			Message: "document rendering is unavailable",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asFieldErrors(err error) *forms.Errors {
	var vErr *forms.Errors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrInvalidID),
		errors.Is(err, labeldomain.ErrNotFound),
		errors.Is(err, labeldomain.ErrInvalidID),
		errors.Is(err, clientdomain.ErrNotFound),
		errors.Is(err, clientdomain.ErrInvalidID),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error", payload.Type
	case status >= http.StatusBadRequest:
		return "client_error", payload.Type
	default:
		return "", payload.Type
	}
}
