package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v2"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// DevJWTSecret допустим только в development
	DevJWTSecret = "secret"

	defaultConfigPath = "config/config.yaml"
)

type ServerConfig struct {
	Host          string   `yaml:"host"`
	Port          int      `yaml:"port"`
	Env           string   `yaml:"env"`
	PublicBaseURL string   `yaml:"public_base_url"` // база для ссылок на загруженные файлы
	CORSOrigins   []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // postgres | sqlite
	DSN                    string `yaml:"url"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	AutoMigrate            bool   `yaml:"auto_migrate"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	TTLHours int    `yaml:"ttl_hours"`
	Issuer   string `yaml:"issuer"`

	// выставляется при загрузке, если сработал dev-fallback
	UsingFallbackSecret bool `yaml:"-"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
	UseTLS       bool   `yaml:"use_tls"`
}

type StorageConfig struct {
	Type       string `yaml:"type"`        // local, s3, cloudflare_r2
	BasePath   string `yaml:"base_path"`   // For local storage
	BaseURL    string `yaml:"base_url"`    // Public URL base
	Bucket     string `yaml:"bucket"`      // For S3/R2
	Region     string `yaml:"region"`      // For S3
	AccessKey  string `yaml:"access_key"`  // For S3/R2
	SecretKey  string `yaml:"secret_key"`  // For S3/R2
	Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
	AccountID  string `yaml:"account_id"`  // For R2
	PublicRead bool   `yaml:"public_read"` // Make files public
}

type UploadConfig struct {
	MaxAvatarSize int64 `yaml:"max_avatar_size"` // bytes
	AvatarSide    int   `yaml:"avatar_side"`     // px, аватар квадратный
	ImageQuality  int   `yaml:"image_quality"`   // JPEG quality (1-100)
}

// WorkersConfig - фоновые задачи; отрицательный интервал отключает задачу
type WorkersConfig struct {
	BookingAutoCompleteMinutes int `yaml:"booking_autocomplete_minutes"`
}

// AdminConfig - учетка первого администратора, создается при старте
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Admin    AdminConfig    `yaml:"admin"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Email    EmailConfig    `yaml:"email"`
	Storage  StorageConfig  `yaml:"storage"`
	Upload   UploadConfig   `yaml:"upload"`
	Workers  WorkersConfig  `yaml:"workers"`
}

// Load читает YAML (CONFIG_PATH или config/config.yaml), поверх него
// применяет переменные окружения, затем дефолты и валидацию.
// Отсутствие файла по умолчанию не ошибка: достаточно окружения.
func Load() (*Config, error) {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigPath
	}

	if err := readFile(configPath, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := resolveJWTSecret(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "PORT")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.PublicBaseURL, "PUBLIC_BASE_URL")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}

	setString(&cfg.Database.DSN, "DATABASE_URL")
	setString(&cfg.Database.Driver, "DATABASE_DRIVER")

	setString(&cfg.Admin.Email, "FIRST_ADMIN_EMAIL")
	setString(&cfg.Admin.Password, "FIRST_ADMIN_PASSWORD")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.TTLHours, "JWT_TTL_HOURS")

	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM")

	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Storage.BasePath, "STORAGE_BASE_PATH")
	setString(&cfg.Storage.BaseURL, "STORAGE_BASE_URL")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "STORAGE_REGION")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setString(&cfg.Storage.AccountID, "STORAGE_ACCOUNT_ID")

	setInt(&cfg.Workers.BookingAutoCompleteMinutes, "BOOKING_AUTOCOMPLETE_MINUTES")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Env == "" {
		cfg.Server.Env = EnvDevelopment
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.PublicBaseURL == "" {
		cfg.Server.PublicBaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.Server.PublicBaseURL = strings.TrimRight(cfg.Server.PublicBaseURL, "/")
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeMinutes == 0 {
		cfg.Database.ConnMaxLifetimeMinutes = 30
	}

	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24 * 30
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "nextignition"
	}

	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "NextIgnition"
	}

	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.Type == "local" {
		if cfg.Storage.BasePath == "" {
			cfg.Storage.BasePath = "./uploads"
		}
		if cfg.Storage.BaseURL == "" {
			cfg.Storage.BaseURL = cfg.Server.PublicBaseURL + "/files"
		}
	}

	if cfg.Upload.MaxAvatarSize == 0 {
		cfg.Upload.MaxAvatarSize = 5 * 1024 * 1024
	}
	if cfg.Upload.AvatarSide == 0 {
		cfg.Upload.AvatarSide = 512
	}
	if cfg.Upload.ImageQuality == 0 {
		cfg.Upload.ImageQuality = 85
	}

	if cfg.Workers.BookingAutoCompleteMinutes == 0 {
		cfg.Workers.BookingAutoCompleteMinutes = 60
	}
}

// resolveJWTSecret: без секрета стартуем только в development
func resolveJWTSecret(cfg *Config) error {
	if cfg.JWT.Secret != "" {
		return nil
	}
	if cfg.Server.Env != EnvDevelopment {
		return fmt.Errorf("JWT_SECRET must be set in %s environment", cfg.Server.Env)
	}
	cfg.JWT.Secret = DevJWTSecret
	cfg.JWT.UsingFallbackSecret = true
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server),
		validation.Field(&c.Database),
		validation.Field(&c.JWT),
		validation.Field(&c.Storage),
		validation.Field(&c.Upload),
	)
}

func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.Env, validation.Required, validation.In(EnvDevelopment, EnvTest, EnvProduction)),
		validation.Field(&s.PublicBaseURL, validation.Required, is.RequestURL),
	)
}

func (d DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver, validation.Required, validation.In("postgres", "sqlite")),
		validation.Field(&d.DSN, validation.Required),
		validation.Field(&d.MaxOpenConns, validation.Min(1)),
		validation.Field(&d.MaxIdleConns, validation.Min(0)),
	)
}

func (j JWTConfig) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.Secret, validation.Required),
		validation.Field(&j.TTLHours, validation.Required, validation.Min(1)),
	)
}

func (s StorageConfig) Validate() error {
	remote := s.Type == "s3" || s.Type == "cloudflare_r2"
	return validation.ValidateStruct(&s,
		validation.Field(&s.Type, validation.Required, validation.In("local", "s3", "cloudflare_r2")),
		validation.Field(&s.BasePath, validation.When(s.Type == "local", validation.Required)),
		validation.Field(&s.Bucket, validation.When(remote, validation.Required)),
		validation.Field(&s.AccessKey, validation.When(remote, validation.Required)),
		validation.Field(&s.SecretKey, validation.When(remote, validation.Required)),
		validation.Field(&s.Region, validation.When(s.Type == "s3", validation.Required)),
		validation.Field(&s.AccountID, validation.When(s.Type == "cloudflare_r2" && s.Endpoint == "", validation.Required)),
	)
}

func (u UploadConfig) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.MaxAvatarSize, validation.Min(int64(1024))),
		validation.Field(&u.AvatarSide, validation.Min(32), validation.Max(4096)),
		validation.Field(&u.ImageQuality, validation.Min(1), validation.Max(100)),
	)
}

// Addr - адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
