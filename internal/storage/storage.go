package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrInvalidKey - ключ пустой или выходит за пределы хранилища
var ErrInvalidKey = errors.New("invalid storage key")

// Storage - файловое хранилище для загрузок пользователей (аватары)
type Storage interface {
	// Save stores an object under key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes the object; missing objects are not an error
	Delete(ctx context.Context, key string) error

	// Exists checks whether the object is present
	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public URL of the object
	URL(key string) string

	// KeyFromURL is the inverse of URL; ok=false for foreign URLs
	KeyFromURL(url string) (key string, ok bool)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	AccountID  string // For R2 when Endpoint is empty
	PublicRead bool   // Make files public by default
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// cleanKey нормализует ключ и отсекает выход наверх через ".."
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, `\`, "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

func keyFromURL(base, url string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if base == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key, err := cleanKey(strings.TrimPrefix(url, prefix))
	if err != nil {
		return "", false
	}
	return key, true
}
