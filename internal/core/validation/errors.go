package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a failure attributed to one input field.
type FieldError struct {
	Field          string
	ObjectName     string
	Code           string
	DefaultMessage string
	RejectedValue  interface{}
}

// GlobalError is a failure that is not attributable to a single field.
type GlobalError struct {
	ObjectName     string
	Code           string
	DefaultMessage string
}

// Errors accumulates validation failures for one input object.
// Validators append to it and callers inspect it afterwards; nothing is thrown.
type Errors struct {
	objectName string
	fields     []FieldError
	globals    []GlobalError
}

// NewErrors creates an empty sink for the named input object (e.g. "eventRequest").
func NewErrors(objectName string) *Errors {
	return &Errors{objectName: objectName}
}

// ObjectName returns the name of the validated object.
func (e *Errors) ObjectName() string {
	return e.objectName
}

// Reject registers a global failure.
func (e *Errors) Reject(code, message string) {
	e.globals = append(e.globals, GlobalError{
		ObjectName:     e.objectName,
		Code:           code,
		DefaultMessage: message,
	})
}

// RejectValue registers a failure on field with the offending value.
func (e *Errors) RejectValue(field, code, message string, rejected interface{}) {
	e.fields = append(e.fields, FieldError{
		Field:          field,
		ObjectName:     e.objectName,
		Code:           code,
		DefaultMessage: message,
		RejectedValue:  rejected,
	})
}

func (e *Errors) HasErrors() bool {
	return len(e.fields) > 0 || len(e.globals) > 0
}

func (e *Errors) FieldErrors() []FieldError {
	return append([]FieldError(nil), e.fields...)
}

func (e *Errors) GlobalErrors() []GlobalError {
	return append([]GlobalError(nil), e.globals...)
}

// Err returns e as an error when it holds failures, nil otherwise.
func (e *Errors) Err() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	msgs := make([]string, 0, len(e.fields)+len(e.globals))
	for _, f := range e.fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.DefaultMessage))
	}
	for _, g := range e.globals {
		msgs = append(msgs, g.DefaultMessage)
	}
	if len(msgs) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

type errorJSON struct {
	Field          string `json:"field,omitempty"`
	ObjectName     string `json:"objectName"`
	Code           string `json:"code"`
	DefaultMessage string `json:"defaultMessage"`
	RejectedValue  string `json:"rejectedValue,omitempty"`
}

// MarshalJSON renders the failures as one array: field errors first, then global errors.
func (e *Errors) MarshalJSON() ([]byte, error) {
	out := make([]errorJSON, 0, len(e.fields)+len(e.globals))
	for _, f := range e.fields {
		out = append(out, errorJSON{
			Field:          f.Field,
			ObjectName:     f.ObjectName,
			Code:           f.Code,
			DefaultMessage: f.DefaultMessage,
			RejectedValue:  formatRejected(f.RejectedValue),
		})
	}
	for _, g := range e.globals {
		out = append(out, errorJSON{
			ObjectName:     g.ObjectName,
			Code:           g.Code,
			DefaultMessage: g.DefaultMessage,
		})
	}
	return json.Marshal(out)
}

func formatRejected(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// FromBindingError converts struct-tag validation failures into a sink.
// It returns false when err is not a validator.ValidationErrors.
func FromBindingError(objectName string, err error) (*Errors, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	errs := NewErrors(objectName)
	for _, fe := range verrs {
		errs.RejectValue(
			lowerFirst(fe.Field()),
			fe.Tag(),
			bindingMessage(fe),
			rejectedBindingValue(fe),
		)
	}
	return errs, true
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func rejectedBindingValue(fe validator.FieldError) interface{} {
	v := fe.Value()
	if t, ok := v.(time.Time); ok && t.IsZero() {
		return nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
