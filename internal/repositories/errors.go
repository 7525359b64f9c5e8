package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingStatusChanged = errors.New("booking status changed concurrently")

	ErrStartupNotFound = errors.New("startup not found")

	ErrCommunityNotFound    = errors.New("community not found")
	ErrCommunityNameTaken   = errors.New("community name already taken")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteAlreadyPending = errors.New("pending invite already exists")
	ErrInviteAlreadySent    = errors.New("invite already sent by this inviter")
	ErrInviteStatusChanged  = errors.New("invite status changed concurrently")
)

// likePattern экранирует спецсимволы LIKE и оборачивает подстроку в %...%
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
