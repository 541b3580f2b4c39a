package calc

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("calc: invalid input")

// Validation codes double as i18n message keys.
const (
	CodeInvalidUnits       = "invalid_units"
	CodeInvalidReading     = "invalid_reading"
	CodeReadingOrder       = "reading_order"
	CodeUnknownCategory    = "unknown_category"
	CodeUnknownMethod      = "unknown_method"
	CodeInvalidWattage     = "invalid_wattage"
	CodeInvalidHours       = "invalid_hours"
	CodeMissingName        = "missing_name"
	CodeUnknownCatalogItem = "unknown_catalog_item"
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field string
	Code  string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("calc: %s: %s", e.Field, e.Code)
	}
	return fmt.Sprintf("calc: %s: %s (%s)", e.Field, e.Code, e.Value)
}

// Is lets callers test with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, code string, value interface{}) *ValidationError {
	v := ""
	if value != nil {
		v = fmt.Sprint(value)
	}
	return &ValidationError{Field: field, Code: code, Value: v}
}
