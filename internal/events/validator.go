package events

import (
	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/validation"
	"github.com/go-playground/validator/v10"
)

const (
	objectName = "eventRequest"

	codeWrongPrices = "wrongPrices"
	codeWrongValue  = "wrongValue"
	codeMin         = "min"
)

// Validator checks event input in two layers: structural constraints
// declared as binding tags on v1.EventRequest, then the business rules.
type Validator struct {
	structural *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.SetTagName("binding")
	return &Validator{structural: v}
}

// ValidateRequest runs the structural layer and, only when it passes, the
// business rules. The returned sink is empty when req is acceptable.
func (v *Validator) ValidateRequest(req *v1.EventRequest) *validation.Errors {
	if errs := v.validateStructure(req); errs.HasErrors() {
		return errs
	}

	errs := validation.NewErrors(objectName)
	v.Validate(req, errs)
	return errs
}

func (v *Validator) validateStructure(req *v1.EventRequest) *validation.Errors {
	errs := validation.NewErrors(objectName)
	if err := v.structural.Struct(req); err != nil {
		if converted, ok := validation.FromBindingError(objectName, err); ok {
			errs = converted
		} else {
			errs.Reject("invalid", err.Error())
		}
	}

	// Decimal fields are opaque to the tag validator.
	if req.BasePrice.IsNegative() {
		errs.RejectValue("basePrice", codeMin, "must be greater than or equal to 0", req.BasePrice)
	}
	if req.MaxPrice.IsNegative() {
		errs.RejectValue("maxPrice", codeMin, "must be greater than or equal to 0", req.MaxPrice)
	}
	return errs
}

// Validate applies the business rules to req and records failures in errs.
// Every rule runs; a failing rule does not stop the next one.
//
// A zero maxPrice means "no upper bound", so a base price above it is allowed.
// Only the end date is checked against the other three dates; the event begin
// against enrollment close, and enrollment close against enrollment begin,
// are not checked.
func (v *Validator) Validate(req *v1.EventRequest, errs *validation.Errors) {
	if req.BasePrice.GreaterThan(req.MaxPrice) && !req.MaxPrice.IsZero() {
		errs.Reject(codeWrongPrices, "values for prices are wrong")
	}

	end := req.EndEventDateTime
	if end.Before(req.BeginEventDateTime) ||
		end.Before(req.CloseEnrollmentDateTime) ||
		end.Before(req.BeginEnrollmentDateTime) {
		errs.RejectValue("endEventDateTime", codeWrongValue, "endEventDateTime is wrong", end)
	}

	// TODO: reject beginEventDateTime before closeEnrollmentDateTime, and
	// closeEnrollmentDateTime before beginEnrollmentDateTime.
}
