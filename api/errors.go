package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/reinvvay/airport-api/internal/auth"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/reinvvay/airport-api/internal/service/users"
)

type fieldError struct {
	Code   string `json:"code"`
	Field  string `json:"field"`
	Detail string `json:"detail"`
}

func init() {
	// Report validator failures under the JSON field names clients send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError maps service errors onto status codes and aborts the request.
func respondError(c *gin.Context, err error) {
	var (
		vErrs domain.ValidationErrors
		vErr  *domain.ValidationError
	)
	switch {
	case errors.As(err, &vErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": toFieldErrors(vErrs)})
	case errors.As(err, &vErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": toFieldErrors(domain.ValidationErrors{vErr})})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, users.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toFieldErrors(errs domain.ValidationErrors) []fieldError {
	out := make([]fieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, fieldError{Code: string(e.Kind), Field: e.Field, Detail: e.Message})
	}
	return out
}

// bindJSON decodes and validates the body into dst. An empty body is
// validated as an empty object.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err != nil {
		respondError(c, bindingErrors(err))
		return false
	}
	return true
}

func bindingErrors(err error) domain.ValidationErrors {
	var (
		errs      domain.ValidationErrors
		vErrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *time.ParseError
	)
	switch {
	case errors.As(err, &vErrs):
		for _, fe := range vErrs {
			kind := domain.KindInvalid
			if fe.Tag() == "required" {
				kind = domain.KindRequired
			}
			errs.Add(domain.NewValidationError(kind, fieldPath(fe.Namespace()), tagMessage(fe)))
		}
	case errors.As(err, &typeErr):
		errs.Add(domain.NewValidationError(domain.KindInvalid, typeErr.Field, typeMessage(typeErr.Type)))
	case errors.As(err, &timeErr):
		errs.Add(domain.NewValidationError(domain.KindInvalid, domain.NonFieldErrors,
			"Datetime has wrong format. Use RFC 3339, e.g. 2006-01-02T15:04:05Z."))
	case errors.As(err, &syntaxErr):
		errs.Add(domain.NewValidationError(domain.KindInvalid, domain.NonFieldErrors,
			fmt.Sprintf("JSON parse error - %s", syntaxErr.Error())))
	default:
		errs.Add(domain.NewValidationError(domain.KindInvalid, domain.NonFieldErrors, err.Error()))
	}
	return errs
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	default:
		return fmt.Sprintf("Expected %s.", t.String())
	}
}
