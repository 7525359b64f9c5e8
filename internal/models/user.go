package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string                        `gorm:"size:100;not null" json:"name"`
	Email        string                        `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string                        `gorm:"not null" json:"-"`
	Role         UserRole                      `gorm:"type:varchar(20);not null;default:'founder';index" json:"role"`
	Roles        datatypes.JSONSlice[UserRole] `json:"roles"`
	Avatar       string                        `gorm:"size:1024" json:"avatar"`
	Profile      Profile                       `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`

	VerificationBannerDismissedUntil *time.Time `json:"verificationBannerDismissedUntil"`

	// Relations
	Skills []UserSkill `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Profile хранится в колонках users с префиксом profile_
type Profile struct {
	Bio        string            `gorm:"type:text" json:"bio"`
	Location   string            `gorm:"size:200" json:"location"`
	Experience string            `gorm:"type:text" json:"experience"`
	Expertise  string            `gorm:"size:200;index" json:"expertise"`
	HourlyRate float64           `json:"hourlyRate"`
	Socials    datatypes.JSONMap `json:"socials"`
}

// UserSkill - навык пользователя; порядок задается Position
type UserSkill struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   string `gorm:"type:varchar(36);not null;index"`
	Skill    string `gorm:"size:100;not null;index"`
	Position int    `gorm:"not null;default:0"`
}

// SkillNames - навыки в сохраненном порядке
func (u *User) SkillNames() []string {
	skills := make([]UserSkill, len(u.Skills))
	copy(skills, u.Skills)
	slices.SortStableFunc(skills, func(a, b UserSkill) int { return a.Position - b.Position })

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Skill)
	}
	return names
}

// HasRole - держит ли пользователь роль (не обязательно активную)
func (u *User) HasRole(role UserRole) bool {
	return slices.Contains([]UserRole(u.Roles), role)
}

// GrantRole добавляет роль в набор, если ее там нет
func (u *User) GrantRole(role UserRole) {
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
	}
}
