package middleware

import (
	"errors"
	"strings"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/logger"
	"nextignition_backend/pkg/apperrors"
	"nextignition_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT. Кладет в контекст auth.Subject,
// user_id попадает в контекст логгера.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			c.Abort()
			return
		}

		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenStr) == "" {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(tokenStr))
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "error", err.Error())
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		subject := auth.SubjectFromClaims(claims)
		c.Set(string(contextkeys.SubjectContextKey), subject)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), subject.UserID))
		c.Next()
	}
}

// GetSubject извлекает субъекта, положенного AuthMiddleware
func GetSubject(c *gin.Context) (auth.Subject, bool) {
	val, exists := c.Get(string(contextkeys.SubjectContextKey))
	if !exists {
		return auth.Subject{}, false
	}
	subject, ok := val.(auth.Subject)
	if !ok || subject.IsZero() {
		return auth.Subject{}, false
	}
	return subject, true
}
