package supports

import (
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	XValidator struct{}

	// ValidationError carries per-field messages keyed by JSON field name.
	ValidationError struct {
		Status  int               `json:"status"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
)

var validate *validator.Validate

func (e *ValidationError) Error() string {
	errorJSON, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("Status: %d, Message: %s, Errors: %v", e.Status, e.Message, e.Errors)
	}

	return string(errorJSON)
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(getJSONFieldName)
}

// RegisterValidation installs a custom tag on the shared validator. Packages owning an
// enumeration register their tag from init.
func RegisterValidation(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		log.Panic(err)
	}
}

// OneOfFunc builds a validator.Func accepting only the given string values.
func OneOfFunc(allowed func() []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, candidate := range allowed() {
			if value == candidate {
				return true
			}
		}
		return false
	}
}

func getJSONFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}

	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}

	return name
}

// Validate runs struct validation and returns a *ValidationError describing the first failure
// and every failing field.
func (v XValidator) Validate(data any) error {
	errs := validate.Struct(data)
	if errs == nil {
		return nil
	}

	validationErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return errs
	}

	resp := &ValidationError{
		Status: 422,
		Errors: make(map[string]string, len(validationErrs)),
	}
	for index, err := range validationErrs {
		field := err.Field()
		resp.Errors[field] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, err.Tag())
		if index == 0 {
			resp.Message = resp.Errors[field]
		}
	}

	return resp
}
