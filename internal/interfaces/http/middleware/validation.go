package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/energyservice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	germanVatPattern = regexp.MustCompile(`^DE[0-9]{9}$`)
	zip5Pattern      = regexp.MustCompile(`^[0-9]{5}$`)

	setupOnce sync.Once
)

// SetupValidator configures gin's validator: field names come from json
// tags and the de_vat and zip5 tags are registered. Safe to call repeatedly.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("de_vat", func(fl validator.FieldLevel) bool {
			return germanVatPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("zip5", func(fl validator.FieldLevel) bool {
			return zip5Pattern.MatchString(fl.Field().String())
		})
	})
}

// FormatValidationErrors formats binding errors into an InvalidInput response.
// Malformed JSON yields INVALID_JSON, failed tags yield VALIDATION_ERROR with
// one detail per field.
func FormatValidationErrors(err error) dto.Response {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return dto.NewErrorResponse(dto.StatusInvalidInput, dto.ErrCodeInvalidJSON, "Malformed request body", nil)
	}

	details := make([]dto.ValidationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, dto.ValidationDetail{
			Field:   fieldPath(e),
			Message: getValidationMessage(e),
		})
	}
	return dto.NewErrorResponse(dto.StatusInvalidInput, dto.ErrCodeValidation, "Request validation failed", details)
}

// HandleValidationError writes a 400 response for a binding error
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err))
}

// fieldPath strips the top-level struct name from the namespace so nested
// fields read like "items[0].product_id".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "de_vat":
		return "Must be a German VAT id (DE followed by 9 digits)"
	case "zip5":
		return "Must be exactly 5 digits"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		if e.Kind() == reflect.Slice {
			return "Must contain at least " + e.Param() + " items"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "datetime":
		return "Must be a date in format " + e.Param()
	default:
		return "Invalid value"
	}
}
