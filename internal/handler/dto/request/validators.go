package request

import (
	"strings"

	"shelter-scheduler/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
)

// RegisterValidators adds the custom tags used by the request DTOs to gin's
// validator. It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("reservation_status", validateReservationStatus); err != nil {
		return err
	}
	return v.RegisterValidation("rrule", validateRRule)
}

func validateReservationStatus(fl validator.FieldLevel) bool {
	_, err := reservation.ParseStatus(int(fl.Field().Int()))
	return err == nil
}

// validateRRule only checks syntax; bounds are enforced when the rule is expanded.
func validateRRule(fl validator.FieldLevel) bool {
	rule := strings.TrimPrefix(strings.TrimSpace(fl.Field().String()), "RRULE:")
	_, err := rrule.StrToROption(rule)
	return err == nil
}
