package auth

import "nextignition_backend/internal/models"

// RoleProfile - представление профиля для активной роли.
// Закрытый набор вариантов: FounderProfile, ExpertProfile, InvestorProfile, AdminProfile.
type RoleProfile interface {
	Kind() models.UserRole
	isRoleProfile()
}

type FounderProfile struct {
	Type     models.UserRole `json:"type"`
	Bio      string          `json:"bio"`
	Location string          `json:"location"`
	Skills   []string        `json:"skills"`
	Website  string          `json:"website,omitempty"`
}

type ExpertProfile struct {
	Type       models.UserRole `json:"type"`
	Expertise  string          `json:"expertise"`
	Experience string          `json:"experience"`
	HourlyRate float64         `json:"hourlyRate"`
	Skills     []string        `json:"skills"`
}

type InvestorProfile struct {
	Type     models.UserRole   `json:"type"`
	Bio      string            `json:"bio"`
	Location string            `json:"location"`
	Focus    string            `json:"focus"`
	Socials  map[string]string `json:"socials"`
}

type AdminProfile struct {
	Type  models.UserRole   `json:"type"`
	Roles []models.UserRole `json:"roles"`
}

func (FounderProfile) Kind() models.UserRole  { return models.UserRoleFounder }
func (ExpertProfile) Kind() models.UserRole   { return models.UserRoleExpert }
func (InvestorProfile) Kind() models.UserRole { return models.UserRoleInvestor }
func (AdminProfile) Kind() models.UserRole    { return models.UserRoleAdmin }

func (FounderProfile) isRoleProfile()  {}
func (ExpertProfile) isRoleProfile()   {}
func (InvestorProfile) isRoleProfile() {}
func (AdminProfile) isRoleProfile()    {}

// NewRoleProfile собирает вариант по активной роли; nil для неизвестной роли
func NewRoleProfile(u *models.User) RoleProfile {
	switch u.Role {
	case models.UserRoleFounder:
		return FounderProfile{
			Type:     models.UserRoleFounder,
			Bio:      u.Profile.Bio,
			Location: u.Profile.Location,
			Skills:   u.SkillNames(),
			Website:  stringSocial(u, "website"),
		}
	case models.UserRoleExpert:
		return ExpertProfile{
			Type:       models.UserRoleExpert,
			Expertise:  u.Profile.Expertise,
			Experience: u.Profile.Experience,
			HourlyRate: u.Profile.HourlyRate,
			Skills:     u.SkillNames(),
		}
	case models.UserRoleInvestor:
		socials := make(map[string]string, len(u.Profile.Socials))
		for k, v := range u.Profile.Socials {
			if s, ok := v.(string); ok {
				socials[k] = s
			}
		}
		return InvestorProfile{
			Type:     models.UserRoleInvestor,
			Bio:      u.Profile.Bio,
			Location: u.Profile.Location,
			Focus:    u.Profile.Expertise,
			Socials:  socials,
		}
	case models.UserRoleAdmin:
		roles := make([]models.UserRole, len(u.Roles))
		copy(roles, u.Roles)
		return AdminProfile{Type: models.UserRoleAdmin, Roles: roles}
	}
	return nil
}

func stringSocial(u *models.User, key string) string {
	if v, ok := u.Profile.Socials[key].(string); ok {
		return v
	}
	return ""
}
