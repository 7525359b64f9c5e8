package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/imageprocessor"
	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/internal/storage"
	"nextignition_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvatarConfig - лимиты загрузки аватаров
type AvatarConfig struct {
	MaxSize int64 // bytes
	Side    int   // px, сторона квадрата
}

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type AvatarService interface {
	UploadAvatar(ctx context.Context, db *gorm.DB, subject auth.Subject, file *multipart.FileHeader) (*dto.AvatarResponse, error)
}

type avatarService struct {
	userRepo  repositories.UserRepository
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    AvatarConfig
}

func NewAvatarService(
	userRepo repositories.UserRepository,
	storage storage.Storage,
	processor *imageprocessor.Processor,
	config AvatarConfig,
) AvatarService {
	if config.MaxSize <= 0 {
		config.MaxSize = 5 << 20
	}
	if config.Side <= 0 {
		config.Side = 512
	}
	return &avatarService{
		userRepo:  userRepo,
		storage:   storage,
		processor: processor,
		config:    config,
	}
}

// UploadAvatar: проверка -> нормализация в квадратный JPEG -> storage -> URL в профиль.
// Старый файл удаляется после успешной записи нового URL.
func (s *avatarService) UploadAvatar(ctx context.Context, db *gorm.DB, subject auth.Subject, file *multipart.FileHeader) (resp *dto.AvatarResponse, err error) {
	defer func() {
		metrics.AvatarUploadsTotal.WithLabelValues(metrics.Result(err)).Inc()
	}()

	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.ErrFileRequired
	}
	if file.Size > s.config.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	user, err := s.userRepo.FindByID(db, subject.UserID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	data, err := readUpload(file, s.config.MaxSize)
	if err != nil {
		return nil, err
	}

	if !allowedAvatarTypes[mimetype.Detect(data).String()] {
		return nil, apperrors.ErrInvalidFileType
	}

	normalized, err := s.processor.SquareJPEG(data, s.config.Side)
	if err != nil {
		if errors.Is(err, imageprocessor.ErrTooManyPixels) {
			return nil, apperrors.ErrFileTooLarge
		}
		return nil, apperrors.ErrInvalidFileType.WithError(err)
	}

	key := fmt.Sprintf("avatars/%s/%s.jpg", user.ID, uuid.NewString())
	if err := s.storage.Save(ctx, key, bytes.NewReader(normalized), "image/jpeg"); err != nil {
		return nil, apperrors.ErrFileProcessing.WithError(err)
	}

	url := s.storage.URL(key)
	if err := s.userRepo.UpdateAvatar(db, user.ID, url); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove orphaned avatar", delErr, "key", key)
		}
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	if oldKey, ok := s.storage.KeyFromURL(user.Avatar); ok && oldKey != key {
		if delErr := s.storage.Delete(ctx, oldKey); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove previous avatar", delErr, "key", oldKey)
		}
	}

	logger.CtxInfo(ctx, "avatar updated", "key", key, "bytes", len(normalized))
	return &dto.AvatarResponse{Avatar: url}, nil
}

// readUpload читает не больше limit байт; заголовок Size клиентский, ему не доверяем
func readUpload(file *multipart.FileHeader, limit int64) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperrors.ErrFileProcessing.WithError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, apperrors.ErrFileProcessing.WithError(err)
	}
	if int64(len(data)) > limit {
		return nil, apperrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, apperrors.ErrFileRequired
	}
	return data, nil
}
