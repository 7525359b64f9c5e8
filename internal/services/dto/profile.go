package dto

import (
	"maps"

	"nextignition_backend/internal/models"

	"gorm.io/datatypes"
)

// ProfilePatch - частичное обновление профиля.
// nil означает "поле не передано"; пустой непустой-nil срез/мапа очищает значение.
type ProfilePatch struct {
	Bio        *string           `json:"bio" validate:"omitempty,max=2000"`
	Location   *string           `json:"location" validate:"omitempty,max=200"`
	Website    *string           `json:"website" validate:"omitempty,max=500"`
	Skills     []string          `json:"skills" validate:"omitempty,max=50,dive,required,max=100"`
	Experience *string           `json:"experience" validate:"omitempty,max=5000"`
	Expertise  *string           `json:"expertise" validate:"omitempty,max=200"`
	HourlyRate *float64          `json:"hourlyRate" validate:"omitempty,gte=0"`
	Socials    map[string]string `json:"socials" validate:"omitempty,max=20,dive,keys,required,max=50,endkeys,max=500"`
}

// IsEmpty - ни одно поле не передано
func (p *ProfilePatch) IsEmpty() bool {
	return p.Bio == nil && p.Location == nil && p.Website == nil && p.Skills == nil &&
		p.Experience == nil && p.Expertise == nil && p.HourlyRate == nil && p.Socials == nil
}

// Apply вливает переданные поля в профиль пользователя.
// website пишется в socials.website после socials. Возвращает true, если навыки заменены.
func (p *ProfilePatch) Apply(u *models.User) (skillsChanged bool) {
	if p.Bio != nil {
		u.Profile.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Profile.Location = *p.Location
	}
	if p.Experience != nil {
		u.Profile.Experience = *p.Experience
	}
	if p.Expertise != nil {
		u.Profile.Expertise = *p.Expertise
	}
	if p.HourlyRate != nil {
		u.Profile.HourlyRate = *p.HourlyRate
	}
	if p.Socials != nil {
		socials := make(datatypes.JSONMap, len(p.Socials))
		for k, v := range p.Socials {
			socials[k] = v
		}
		u.Profile.Socials = socials
	}
	if p.Website != nil {
		socials := make(datatypes.JSONMap, len(u.Profile.Socials)+1)
		maps.Copy(socials, u.Profile.Socials)
		socials["website"] = *p.Website
		u.Profile.Socials = socials
	}
	if p.Skills != nil {
		skills := make([]models.UserSkill, 0, len(p.Skills))
		for i, name := range p.Skills {
			skills = append(skills, models.UserSkill{UserID: u.ID, Skill: name, Position: i})
		}
		u.Skills = skills
		skillsChanged = true
	}
	return skillsChanged
}
