package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/moneytracker/api/pkg/domain"
)

const (
	internalErrorDetail = "An unexpected error occurred"
	problemContentType  = "application/problem+json"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Field-level validation failures
}

// ProblemDetailsJSON writes an application/problem+json response.
//
// The optional args may carry a string detail and/or an int status. Without an
// explicit status the code comes from ErrorToStatusCode(err), or 400 when err is
// nil. For 5xx responses the detail never echoes err.
func ProblemDetailsJSON(
	c *fiber.Ctx,
	title string,
	err error,
	args ...any,
) error {
	status := 0
	detail := ""
	for _, a := range args {
		switch v := a.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		if err != nil {
			status = ErrorToStatusCode(err)
		} else {
			status = fiber.StatusBadRequest
		}
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	var verrs validator.ValidationErrors
	var vErr *ValidationError
	switch {
	case status >= fiber.StatusInternalServerError:
		if err != nil {
			log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}
		pd.Detail = internalErrorDetail
	case errors.As(err, &vErr):
		pd.Errors = vErr.Fields
	case errors.As(err, &verrs):
		pd.Errors = FieldErrors(verrs)
	case pd.Detail == "" && err != nil:
		pd.Detail = err.Error()
	}

	return c.Status(status).JSON(pd, problemContentType)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidReference):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the app-wide fallback for errors returned by handlers and
// middleware. Unknown errors become a masked 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ProblemDetailsJSON(c, utils.StatusMessage(fe.Code), nil, fe.Message, fe.Code)
	}
	return ProblemDetailsJSON(c, "Internal Server Error", err)
}
