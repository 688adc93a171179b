package errors

import (
	"fmt"
	"strings"
)

// MetaKeyViolations is the metadata key holding a []FieldViolation
const MetaKeyViolations = "violations"

// FieldViolation is one failed check on a named field
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError collects field violations in the order they were found, so
// the message is stable across calls
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Violations) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, fv := range v.Violations {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fv.Field)
		b.WriteString(": ")
		b.WriteString(fv.Description)
	}
	return b.String()
}

// AddFieldError records a violation for field
func (v *ValidationError) AddFieldError(field, description string) {
	v.Violations = append(v.Violations, FieldViolation{Field: field, Description: description})
}

// AddFieldErrorf records a formatted violation for field
func (v *ValidationError) AddFieldErrorf(field, format string, args ...any) {
	v.AddFieldError(field, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any violation was recorded
func (v *ValidationError) HasErrors() bool {
	return len(v.Violations) > 0
}

// ToError returns an InvalidArgument carrying the violations, or nil
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	out := make([]FieldViolation, len(v.Violations))
	copy(out, v.Violations)
	return InvalidArgument(v.Error()).WithMeta(MetaKeyViolations, out)
}

// Violations returns the field violations attached to err, if any
func Violations(err error) []FieldViolation {
	if fv, ok := GetMeta(err)[MetaKeyViolations].([]FieldViolation); ok {
		return fv
	}
	return nil
}

// ValidationBuilder accumulates violations; Build returns nil when there are
// none
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

// Field records a violation
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf records a formatted violation
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	vb.err.AddFieldErrorf(field, format, args...)
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a field with an unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the collected violations as an InvalidArgument error
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired records field as missing when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateEnum records a violation unless value is one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

// ValidateRange records a violation unless minValue <= value <= maxValue
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}
