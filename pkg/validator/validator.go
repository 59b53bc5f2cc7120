package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-thrifty-inventory/internal/model"
)

// FieldError is one structural violation on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var validate = validator.New()

func init() {
	// Report fields under their wire names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Enum membership checks for the two domain enums
	validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return model.ProductCategory(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("log_reason", func(fl validator.FieldLevel) bool {
		return model.LogReason(fl.Field().String()).Valid()
	})
}

// ValidateStruct runs the declared tag rules against data and returns the
// violations, or nil when the struct is valid. Pointer fields that are nil are
// treated as absent: only "required" fires on them, so partial-update payloads
// validate exactly the fields they carry.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		errors = append(errors, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return errors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not be empty", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "category":
		return "Invalid category. Must be one of: " + strings.Join(model.ProductCategories(), ", ")
	case "log_reason":
		return "Invalid reason. Must be one of: " + strings.Join(model.LogReasons(), ", ")
	default:
		return fmt.Sprintf("%s failed on rule '%s'", fe.Field(), fe.Tag())
	}
}
