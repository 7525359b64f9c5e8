package validator

import (
	"log"
	"slices"

	"nextignition_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// без правила DTO не валидируются, стартовать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': любая роль из statuses.go
	mustRegister("is-user-role", validateUserRole)

	// 'is-self-role': роль, которую пользователь может выбрать сам (не admin)
	mustRegister("is-self-role", validateSelfRole)

	// 'is-booking-status'
	mustRegister("is-booking-status", validateBookingStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения - забота 'required'
	}
	return models.UserRole(value).IsValid()
}

func validateSelfRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return slices.Contains([]models.UserRole{
		models.UserRoleFounder,
		models.UserRoleExpert,
		models.UserRoleInvestor,
	}, models.UserRole(value))
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BookingStatus(value).IsValid()
}
