package events

import (
	"testing"
	"time"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2018, 11, 23, 14, 21, 0, 0, time.UTC)

func validRequest() *v1.EventRequest {
	loc := "강남역 D2 스타텁 팩토리"
	return &v1.EventRequest{
		Name:                    "Gophers",
		Description:             "REST API Development with Go",
		BeginEnrollmentDateTime: base,
		CloseEnrollmentDateTime: base.Add(24 * time.Hour),
		BeginEventDateTime:      base.Add(48 * time.Hour),
		EndEventDateTime:        base.Add(72 * time.Hour),
		Location:                &loc,
		BasePrice:               decimal.NewFromInt(100),
		MaxPrice:                decimal.NewFromInt(200),
		LimitOfEnrollment:       100,
	}
}

func TestValidator_Prices(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int64
		maxPrice  int64
		wantError bool
	}{
		{name: "base above max", basePrice: 10000, maxPrice: 200, wantError: true},
		{name: "base below max", basePrice: 100, maxPrice: 200},
		{name: "equal prices", basePrice: 200, maxPrice: 200},
		{name: "free", basePrice: 0, maxPrice: 0},
		{name: "unlimited max", basePrice: 100, maxPrice: 0},
	}

	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.BasePrice = decimal.NewFromInt(tc.basePrice)
			req.MaxPrice = decimal.NewFromInt(tc.maxPrice)

			errs := validation.NewErrors(objectName)
			v.Validate(req, errs)

			if !tc.wantError {
				assert.False(t, errs.HasErrors())
				return
			}
			require.Len(t, errs.GlobalErrors(), 1)
			assert.Empty(t, errs.FieldErrors())
			g := errs.GlobalErrors()[0]
			assert.Equal(t, "wrongPrices", g.Code)
			assert.Equal(t, "values for prices are wrong", g.DefaultMessage)
		})
	}
}

func TestValidator_EndEventDateTime(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *v1.EventRequest)
		wantError bool
	}{
		{name: "valid ordering", mutate: func(r *v1.EventRequest) {}},
		{name: "end equals begin", mutate: func(r *v1.EventRequest) { r.EndEventDateTime = r.BeginEventDateTime }},
		{name: "end before event begin", mutate: func(r *v1.EventRequest) {
			r.EndEventDateTime = r.BeginEventDateTime.Add(-time.Minute)
		}, wantError: true},
		{name: "end before enrollment close", mutate: func(r *v1.EventRequest) {
			r.BeginEventDateTime = base
			r.EndEventDateTime = r.CloseEnrollmentDateTime.Add(-time.Minute)
		}, wantError: true},
		{name: "end before enrollment begin", mutate: func(r *v1.EventRequest) {
			r.BeginEventDateTime = base.Add(-2 * time.Hour)
			r.CloseEnrollmentDateTime = base.Add(-2 * time.Hour)
			r.EndEventDateTime = base.Add(-time.Hour)
		}, wantError: true},
	}

	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			errs := validation.NewErrors(objectName)
			v.Validate(req, errs)

			if !tc.wantError {
				assert.False(t, errs.HasErrors())
				return
			}
			require.Len(t, errs.FieldErrors(), 1)
			fe := errs.FieldErrors()[0]
			assert.Equal(t, "endEventDateTime", fe.Field)
			assert.Equal(t, "wrongValue", fe.Code)
			assert.Equal(t, "endEventDateTime is wrong", fe.DefaultMessage)
			assert.Equal(t, req.EndEventDateTime, fe.RejectedValue)
		})
	}
}

func TestValidator_RulesAreIndependent(t *testing.T) {
	req := validRequest()
	req.BasePrice = decimal.NewFromInt(10000)
	req.EndEventDateTime = base.Add(-time.Hour)

	errs := validation.NewErrors(objectName)
	NewValidator().Validate(req, errs)

	assert.Len(t, errs.GlobalErrors(), 1)
	assert.Len(t, errs.FieldErrors(), 1)
}

func TestValidator_UncheckedOrderings(t *testing.T) {
	req := validRequest()
	// The event begins before enrollment closes, and enrollment closes before
	// it opens; neither is rejected while the end date is last.
	req.BeginEventDateTime = base.Add(-2 * time.Hour)
	req.CloseEnrollmentDateTime = base.Add(-time.Hour)

	errs := validation.NewErrors(objectName)
	NewValidator().Validate(req, errs)
	assert.False(t, errs.HasErrors())
}

func TestValidator_ValidateRequestStructural(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateRequest(&v1.EventRequest{})
	require.True(t, errs.HasErrors())
	assert.Empty(t, errs.GlobalErrors())

	fields := map[string]string{}
	for _, fe := range errs.FieldErrors() {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, map[string]string{
		"name":                    "required",
		"description":             "required",
		"beginEnrollmentDateTime": "required",
		"closeEnrollmentDateTime": "required",
		"beginEventDateTime":      "required",
		"endEventDateTime":        "required",
	}, fields)
}

func TestValidator_ValidateRequestMinimums(t *testing.T) {
	req := validRequest()
	req.LimitOfEnrollment = -1
	req.BasePrice = decimal.NewFromInt(-5)
	req.MaxPrice = decimal.NewFromInt(-1)

	errs := NewValidator().ValidateRequest(req)

	fields := map[string]string{}
	for _, fe := range errs.FieldErrors() {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, map[string]string{
		"limitOfEnrollment": "min",
		"basePrice":         "min",
		"maxPrice":          "min",
	}, fields)
	// Business rules do not run while structural errors exist.
	assert.Empty(t, errs.GlobalErrors())
}

func TestValidator_ValidateRequestRunsBusinessRules(t *testing.T) {
	req := validRequest()
	req.BasePrice = decimal.NewFromInt(10000)

	errs := NewValidator().ValidateRequest(req)
	require.Len(t, errs.GlobalErrors(), 1)
	assert.Equal(t, "eventRequest", errs.ObjectName())

	assert.False(t, NewValidator().ValidateRequest(validRequest()).HasErrors())
}
