package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/moneytracker/api/pkg/domain"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
)

// FieldError describes one failing field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError carries every failing field of one request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

// NonNullable is implemented by partial-update bodies whose fields may be
// omitted but never sent as an explicit null.
type NonNullable interface {
	NonNullFields() []string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors converts validator errors into the response list, keyed by JSON name.
func FieldErrors(errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "alpha":
		return "must contain letters only"
	case "email":
		return "must be a valid email address"
	case "gt", "lt", "gte", "lte":
		return "is out of range"
	case "isdefault":
		return "cannot be changed"
	case "datetime":
		return "must be an RFC 3339 date-time"
	default:
		return "is invalid"
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes a 400 problem response
// and returns nil together with the write error (normally nil).
//
// Type mismatches, explicit nulls on NonNullable bodies and validator failures
// are reported together, one entry per field.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if len(c.Body()) == 0 {
		return nil, ProblemDetailsJSON(c, "Invalid request body", nil, "request body must be a JSON object")
	}

	var fields []FieldError
	if err := c.BodyParser(&input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, ProblemDetailsJSON(c, "Invalid request body", nil, "request body must be a JSON object")
		}
		fields = append(fields, FieldError{
			Field:   typeErr.Field,
			Tag:     "type",
			Message: "must be a " + jsonKind(typeErr.Type),
		})
	}
	if nn, ok := any(&input).(NonNullable); ok {
		fields = append(fields, nullFields(c.Body(), nn.NonNullFields())...)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
		}
		fields = mergeFieldErrors(fields, FieldErrors(verrs))
	}
	if len(fields) > 0 {
		return nil, ProblemDetailsJSON(c, "Validation failed", &ValidationError{Fields: fields}, fiber.StatusBadRequest)
	}
	return &input, nil
}

// mergeFieldErrors appends extra entries for fields not already reported.
func mergeFieldErrors(fields, extra []FieldError) []FieldError {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		seen[f.Field] = true
	}
	for _, f := range extra {
		if !seen[f.Field] {
			fields = append(fields, f)
		}
	}
	return fields
}

func nullFields(body []byte, names []string) []FieldError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	var out []FieldError
	for _, name := range names {
		if v, ok := raw[name]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			out = append(out, FieldError{Field: name, Tag: "notnull", Message: "cannot be null"})
		}
	}
	return out
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// ParseID reads a UUID path parameter.
func ParseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a valid UUID", domain.ErrValidation, name)
	}
	return id, nil
}

// CurrentUserID resolves the owning user from the token stored by the JWT middleware.
func CurrentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return authSvc.GetCurrentUserID(token)
}

// ParseOptionalUUID converts an optional UUID string that already passed validation.
func ParseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
