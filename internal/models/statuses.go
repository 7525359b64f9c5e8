package models

type UserRole string
type BookingStatus string
type InviteStatus string

const (
	UserRoleFounder  UserRole = "founder"
	UserRoleExpert   UserRole = "expert"
	UserRoleInvestor UserRole = "investor"
	UserRoleAdmin    UserRole = "admin"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"

	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusDeclined  InviteStatus = "declined"
	InviteStatusCancelled InviteStatus = "cancelled"
)

// UserRoles - все роли в порядке объявления
var UserRoles = []UserRole{UserRoleFounder, UserRoleExpert, UserRoleInvestor, UserRoleAdmin}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleFounder, UserRoleExpert, UserRoleInvestor, UserRoleAdmin:
		return true
	}
	return false
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo описывает граф статусов брони
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

func (s InviteStatus) IsTerminal() bool {
	return s != InviteStatusPending
}
