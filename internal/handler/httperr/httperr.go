package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type Response struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, fieldErrs []FieldError) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Errors: fieldErrs}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithValidation answers 400 with one entry per failed field.
func AbortWithValidation(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", FieldErrors(err))
}

func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, FieldError{Field: fe.Field(), Error: describe(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{Field: typeErr.Field, Error: "must be a " + typeErr.Type.String()}}
	}

	return []FieldError{{Field: "body", Error: err.Error()}}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

// Rule maps a use-case sentinel to an HTTP answer. A non-empty Field turns
// the answer into the validation envelope.
type Rule struct {
	Target  error
	Status  int
	Message string
	Field   string
}

// Order matters: CarUnavailable also matches Conflict.
var defaultRules = []Rule{
	{Target: errs.ErrCarNotFound, Status: http.StatusNotFound, Message: "Car not found"},
	{Target: errs.ErrRentalNotFound, Status: http.StatusNotFound, Message: "Rental not found"},
	{Target: errs.ErrPaymentNotFound, Status: http.StatusNotFound, Message: "Payment not found"},
	{Target: errs.ErrForbidden, Status: http.StatusForbidden, Message: "Rental belongs to another user"},
	{Target: errs.ErrIdempotencyMismatch, Status: http.StatusConflict, Message: "Idempotency key was used with a different request"},
	{Target: errs.ErrIdempotencyInProgress, Status: http.StatusConflict, Message: "Request with this idempotency key is still being processed"},
	{Target: errs.ErrCarUnavailable, Status: http.StatusBadRequest, Message: "Car is already reserved"},
	{Target: errs.ErrConflict, Status: http.StatusBadRequest, Message: "Rental is not in progress"},
	{Target: errs.ErrInvalidPeriod, Status: http.StatusBadRequest, Message: "Invalid rental period", Field: "date_to"},
	{Target: errs.ErrDomainValidation, Status: http.StatusBadRequest, Message: "Invalid request", Field: "request"},
	{Target: errs.ErrUpstreamFailure, Status: http.StatusInternalServerError, Message: "Upstream service failure"},
}

// AbortWithUseCaseError translates err through overrides first, then the
// shared table. Anything unmatched is a 500.
func AbortWithUseCaseError(c *gin.Context, err error, overrides ...Rule) {
	rule, ok := match(err, overrides)
	if !ok {
		rule, ok = match(err, defaultRules)
	}
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	var fieldErrs []FieldError
	if rule.Field != "" {
		fieldErrs = []FieldError{{Field: rule.Field, Error: err.Error()}}
	}
	AbortWithError(c, rule.Status, err, rule.Message, fieldErrs)
}

func match(err error, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			return r, true
		}
	}
	return Rule{}, false
}
