package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intakeForm struct {
	Email        string    `json:"email" validate:"omitempty,email"`
	DateOfBirth  time.Time `json:"dateOfBirth" validate:"omitempty,recruit-dob"`
	Status       string    `json:"status" validate:"omitempty,is-recruit-status"`
	Stage        string    `json:"stage" validate:"omitempty,is-sorb-stage"`
	Component    string    `json:"component" validate:"omitempty,is-component"`
	Availability string    `json:"availability" validate:"omitempty,is-availability"`
}

func TestValidate_RecruitAgeWindow(t *testing.T) {
	v := New()
	bornYearsAgo := func(years int) time.Time {
		return time.Now().AddDate(-years, 0, -1)
	}

	for _, years := range []int{17, 25, 42} {
		assert.NoError(t, v.Validate(&intakeForm{DateOfBirth: bornYearsAgo(years)}),
			"age %d is inside the window", years)
	}
	for _, years := range []int{16, 43, 99} {
		assert.Error(t, v.Validate(&intakeForm{DateOfBirth: bornYearsAgo(years)}),
			"age %d is outside the window", years)
	}

	// A 17th birthday that falls tomorrow still counts as 16 today.
	almostSeventeen := time.Now().AddDate(-17, 0, 1)
	assert.Error(t, v.Validate(&intakeForm{DateOfBirth: almostSeventeen}))

	// The zero time means "not provided" and is left to the required rule.
	assert.NoError(t, v.Validate(&intakeForm{}))
}

func TestValidate_StatusAcceptsBothVocabularies(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "reviewing", "contacted", "approved", "qualified", "rejected", "disqualified"} {
		assert.NoError(t, v.Validate(&intakeForm{Status: status}), "status %q", status)
	}
	assert.Error(t, v.Validate(&intakeForm{Status: "enlisted"}))
}

func TestValidate_SorbStageAcceptsLegacyValues(t *testing.T) {
	v := New()

	for _, stage := range []string{"prospect", "interested", "scheduled", "contracted", "declined"} {
		assert.NoError(t, v.Validate(&intakeForm{Stage: stage}), "stage %q", stage)
	}
	assert.Error(t, v.Validate(&intakeForm{Stage: "ghosted"}))
}

func TestValidate_ComponentAndAvailability(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&intakeForm{Component: "active"}))
	assert.NoError(t, v.Validate(&intakeForm{Component: "reserve"}))
	assert.Error(t, v.Validate(&intakeForm{Component: "guard"}))

	assert.NoError(t, v.Validate(&intakeForm{Availability: "3_months"}))
	assert.Error(t, v.Validate(&intakeForm{Availability: "someday"}))
}

// Error messages key off the json tag name, which is what API clients see.
func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&intakeForm{Email: "not-an-email"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
}
