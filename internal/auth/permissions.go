package auth

import (
	"slices"

	"nextignition_backend/internal/models"
)

// SelfAssignableRoles - роли, которые можно взять себе при регистрации или переключении
var SelfAssignableRoles = []models.UserRole{
	models.UserRoleFounder,
	models.UserRoleExpert,
	models.UserRoleInvestor,
}

// CanSwitchTo: founder/expert/investor доступны всем, admin - только уже имеющим ее
func CanSwitchTo(user *models.User, role models.UserRole) bool {
	if !role.IsValid() {
		return false
	}
	if slices.Contains(SelfAssignableRoles, role) {
		return true
	}
	return user.HasRole(role)
}

// CanSetBookingStatus описывает, кто может выставить статус брони:
// эксперт подтверждает и завершает, любая сторона отменяет, админ может все
func CanSetBookingStatus(s Subject, b *models.Booking, status models.BookingStatus) bool {
	if s.IsAdmin() {
		return true
	}
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCompleted:
		return s.Is(b.ExpertID)
	case models.BookingStatusCancelled:
		return b.IsParty(s.UserID)
	}
	return false
}
