package auth

import "nextignition_backend/internal/models"

// Subject - аутентифицированный пользователь запроса.
// Собирается auth middleware из токена и явно передается в сервисы.
type Subject struct {
	UserID string
	Role   models.UserRole
}

func SubjectFromClaims(c *Claims) Subject {
	return Subject{UserID: c.UserID, Role: c.Role}
}

// IsZero - запрос без аутентификации
func (s Subject) IsZero() bool {
	return s.UserID == ""
}

func (s Subject) IsAdmin() bool {
	return s.Role == models.UserRoleAdmin
}

// Is - совпадает ли субъект с пользователем id
func (s Subject) Is(userID string) bool {
	return !s.IsZero() && s.UserID == userID
}
