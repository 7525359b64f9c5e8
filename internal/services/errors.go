package services

import (
	"errors"

	"nextignition_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// mapNotFound переводит sentinel репозитория в доменную ошибку, остальное - в 500
func mapNotFound(err error, sentinel error, appErr *apperrors.AppError) error {
	if errors.Is(err, sentinel) || errors.Is(err, gorm.ErrRecordNotFound) {
		return appErr
	}
	return apperrors.DatabaseError(err)
}

func requireSubject(subjectID string) error {
	if subjectID == "" {
		return apperrors.ErrNotAuthenticated
	}
	return nil
}
