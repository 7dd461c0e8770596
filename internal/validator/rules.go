package validator

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"recruittrack/internal/models"
)

// registerCustomRules installs the domain validation tags. Registration
// failure is a startup error, not a request error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-recruit-status", validateRecruitStatus)
	mustRegister("is-availability", validateAvailability)
	mustRegister("is-component", validateComponent)
	mustRegister("is-sorb-stage", validateSorbStage)
	mustRegister("recruit-dob", validateRecruitDOB)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are 'required''s job
	}
	switch models.UserRole(value) {
	case models.UserRoleRecruiter, models.UserRoleStationCommander, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

// validateRecruitStatus accepts both legacy vocabularies; normalization
// to the canonical enum happens in the service layer.
func validateRecruitStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.NormalizeRecruitStatus(value)
	return ok
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityImmediate, models.AvailabilityOneMonth,
		models.AvailabilityThreeMo, models.AvailabilitySixMo, models.AvailabilityFlexible:
		return true
	default:
		return false
	}
}

func validateComponent(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Component(value) {
	case models.ComponentActive, models.ComponentReserve:
		return true
	default:
		return false
	}
}

func validateSorbStage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.NormalizeSorbStage(value)
	return ok
}

// validateRecruitDOB checks the enlistment window, inclusive on both
// ends, against the age the date of birth yields today.
func validateRecruitDOB(fl validator.FieldLevel) bool {
	dob, ok := fl.Field().Interface().(time.Time)
	if !ok || dob.IsZero() {
		return true
	}
	age := models.AgeAt(dob, time.Now())
	return age >= 17 && age <= 42
}
