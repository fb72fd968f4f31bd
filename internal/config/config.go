package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Document store backends selectable through DOCSTORE_BACKEND.
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

// Appraisal filter modes selectable through APPRAISAL_FILTER_MODE.
const (
	FilterModeAny = "any"
	FilterModeAll = "all"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `envconfig:"DB_HOST"`
	Port               string `envconfig:"DB_PORT" default:"5432"`
	User               string `envconfig:"DB_USER"`
	Password           string `envconfig:"DB_PASSWORD"`
	Name               string `envconfig:"DB_NAME"`
	SSLMode            string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns       int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns       int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetimeSec int    `envconfig:"DB_CONN_MAX_LIFETIME_SEC" default:"300"`
	AutoMigrate        bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// FirestoreConfig holds Cloud Firestore settings.
// CredentialsFile is optional; Application Default Credentials are used when empty.
type FirestoreConfig struct {
	ProjectID       string `envconfig:"FIRESTORE_PROJECT_ID"`
	CredentialsFile string `envconfig:"FIRESTORE_CREDENTIALS_FILE"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	Bucket    string `envconfig:"MINIO_BUCKET"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// AppraisalConfig tunes appraisal submission and querying.
type AppraisalConfig struct {
	// SignedURLExpiry is how long proof image URLs stay readable.
	// S3 SigV4 rejects anything above seven days.
	SignedURLExpiry time.Duration `envconfig:"SIGNED_URL_EXPIRY" default:"168h"`
	// FilterMode combines the year, month and date query filters.
	FilterMode string `envconfig:"APPRAISAL_FILTER_MODE" default:"any"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port             string `envconfig:"PORT" default:"3000"`
	TimeZone         string `envconfig:"APP_TZ" default:"UTC"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	StaticDir        string `envconfig:"STATIC_DIR" default:"public"`
	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	MaxUploadBytes   int    `envconfig:"MAX_UPLOAD_BYTES" default:"16777216"`
	DocstoreBackend  string `envconfig:"DOCSTORE_BACKEND" default:"postgres"`

	Database  DatabaseConfig  `ignored:"true"`
	Firestore FirestoreConfig `ignored:"true"`
	MinIO     MinIOConfig     `ignored:"true"`
	Appraisal AppraisalConfig `ignored:"true"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	// Each section carries fully qualified keys so no variable is read twice.
	for _, spec := range []any{&cfg, &cfg.Database, &cfg.Firestore, &cfg.MinIO, &cfg.Appraisal} {
		if err := envconfig.Process("", spec); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	cfg.DocstoreBackend = strings.ToLower(cfg.DocstoreBackend)
	cfg.Appraisal.FilterMode = strings.ToLower(cfg.Appraisal.FilterMode)

	switch cfg.DocstoreBackend {
	case BackendPostgres, BackendFirestore, BackendMemory:
	default:
		return nil, fmt.Errorf("unsupported DOCSTORE_BACKEND %q", cfg.DocstoreBackend)
	}

	switch cfg.Appraisal.FilterMode {
	case FilterModeAny, FilterModeAll:
	default:
		return nil, fmt.Errorf("unsupported APPRAISAL_FILTER_MODE %q", cfg.Appraisal.FilterMode)
	}

	if cfg.Appraisal.SignedURLExpiry <= 0 {
		return nil, fmt.Errorf("SIGNED_URL_EXPIRY must be positive")
	}

	return &cfg, nil
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
