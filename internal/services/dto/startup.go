package dto

import "nextignition_backend/internal/models"

type CreateStartupRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Industry    string   `json:"industry" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=5000"`
	Skills      []string `json:"skills" validate:"omitempty,max=50,dive,required,max=100"`
}

type StartupResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	FounderID   string   `json:"founderId"`
	Skills      []string `json:"skills"`
}

func NewStartupResponse(s *models.Startup) *StartupResponse {
	skills := make([]string, len(s.Skills))
	copy(skills, s.Skills)
	return &StartupResponse{
		ID:          s.ID,
		Name:        s.Name,
		Industry:    s.Industry,
		Description: s.Description,
		FounderID:   s.FounderID,
		Skills:      skills,
	}
}
