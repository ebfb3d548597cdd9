package contracts

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldReason classifies why a single field failed validation.
type FieldReason string

const (
	ReasonMissingRequired FieldReason = "missing_required"
	ReasonWrongType       FieldReason = "wrong_type"
	ReasonOutOfRange      FieldReason = "out_of_range"
)

// FieldError describes one field-level violation.
type FieldError struct {
	Reason  FieldReason
	Message string
}

// ValidationError reports every field that failed schema construction.
type ValidationError struct {
	Schema string
	Fields map[string]FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k].Message)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Schema, strings.Join(parts, "; "))
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// GetValidationFields extracts field errors from a ValidationError
func GetValidationFields(err error) map[string]FieldError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their json tag so errors match the map keys
	// callers constructed with.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return AuditEventType(fl.Field().String()).Valid()
	})
}

// fieldErrors accumulates per-field violations during decoding and validation.
type fieldErrors map[string]FieldError

func (fe fieldErrors) add(field string, reason FieldReason, msg string) {
	fe[field] = FieldError{Reason: reason, Message: msg}
}

// validateStruct runs go-playground/validator over s and folds any tag
// failures into fe. Fields already flagged by the decoder keep their
// original reason.
func validateStruct(schema string, s interface{}, fe fieldErrors) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		for _, ve := range validationErrors {
			field := ve.Field()
			if _, seen := fe[field]; seen {
				continue
			}
			switch ve.Tag() {
			case "required":
				fe.add(field, ReasonMissingRequired, fmt.Sprintf("%s is required", field))
			case "gte":
				fe.add(field, ReasonOutOfRange, fmt.Sprintf("%s must be greater than or equal to %s", field, ve.Param()))
			case "event_type":
				fe.add(field, ReasonWrongType, fmt.Sprintf("%s must be a known audit event type", field))
			default:
				fe.add(field, ReasonWrongType, fmt.Sprintf("%s validation failed on '%s' tag", field, ve.Tag()))
			}
		}
	}
	if len(fe) > 0 {
		return &ValidationError{Schema: schema, Fields: fe}
	}
	return nil
}
