package server

import (
	"errors"
	"net/http"
	"strings"

	employeedomain "github.com/brushworkslabs/brushworks/internal/employee/domain"
	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	loadoutdomain "github.com/brushworkslabs/brushworks/internal/loadout/domain"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

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
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case isValidationError(err):
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ratebookdomain.ErrInvalidTier),
		errors.Is(err, ratebookdomain.ErrBaseTier),
		errors.Is(err, ratebookdomain.ErrUnknownTier),
		errors.Is(err, equipmentdomain.ErrInvalidID),
		errors.Is(err, equipmentdomain.ErrInvalidName),
		errors.Is(err, equipmentdomain.ErrInvalidYears),
		errors.Is(err, equipmentdomain.ErrInvalidUsage),
		errors.Is(err, employeedomain.ErrInvalidID),
		errors.Is(err, employeedomain.ErrInvalidName),
		errors.Is(err, employeedomain.ErrInvalidWage),
		errors.Is(err, employeedomain.ErrInvalidBurden),
		errors.Is(err, loadoutdomain.ErrInvalidID),
		errors.Is(err, loadoutdomain.ErrInvalidName),
		errors.Is(err, loadoutdomain.ErrInvalidMarkup),
		errors.Is(err, leaddomain.ErrInvalidID),
		errors.Is(err, leaddomain.ErrInvalidName),
		errors.Is(err, leaddomain.ErrInvalidTier),
		errors.Is(err, proposaldomain.ErrInvalidID),
		errors.Is(err, workorderdomain.ErrInvalidID),
		errors.Is(err, workorderdomain.ErrInvalidCompletion),
		errors.Is(err, invoicedomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, leaddomain.ErrInvalidTransition),
		errors.Is(err, proposaldomain.ErrInvalidTransition),
		errors.Is(err, workorderdomain.ErrInvalidTransition),
		errors.Is(err, invoicedomain.ErrInvalidTransition):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, equipmentdomain.ErrNotFound),
		errors.Is(err, employeedomain.ErrNotFound),
		errors.Is(err, loadoutdomain.ErrNotFound),
		errors.Is(err, leaddomain.ErrNotFound),
		errors.Is(err, proposaldomain.ErrNotFound),
		errors.Is(err, proposaldomain.ErrSourceNotFound),
		errors.Is(err, workorderdomain.ErrNotFound),
		errors.Is(err, workorderdomain.ErrSourceNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrSourceNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}
