package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-upload/pkg/simpleupload"
	memoryrepo "github.com/tendant/simple-upload/pkg/simpleupload/repo/memory"
	postgresrepo "github.com/tendant/simple-upload/pkg/simpleupload/repo/postgres"
	memorystorage "github.com/tendant/simple-upload/pkg/simpleupload/storage/memory"
	s3storage "github.com/tendant/simple-upload/pkg/simpleupload/storage/s3"
)

// ServerConfig represents server configuration for the simple-upload service.
// It is constructed once at startup and passed by reference into everything
// that needs it; there is no package-level state.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"3000"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// DatabaseURL selects the metadata repository. Empty means in-memory;
	// a postgres:// URL selects PostgreSQL.
	DatabaseURL string `env:"DATABASE_URL" env-default:""`

	// StorageBackend selects the blob store: "s3" or "memory".
	StorageBackend string `env:"STORAGE_BACKEND" env-default:"s3"`

	S3 S3Config
}

// S3Config holds the object-storage settings. The env names mirror the
// standard AWS variables plus S3_* extras for S3-compatible deployments.
type S3Config struct {
	Region                 string `env:"AWS_REGION" env-default:"us-east-1"`
	Bucket                 string `env:"S3_BUCKET_NAME"`
	AccessKeyID            string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey        string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint               string `env:"S3_ENDPOINT"`
	UsePathStyle           bool   `env:"S3_USE_PATH_STYLE" env-default:"false"`
	PublicBaseURL          string `env:"S3_PUBLIC_BASE_URL"`
	CreateBucketIfNotExist bool   `env:"S3_CREATE_BUCKET_IF_NOT_EXIST" env-default:"false"`
}

// Load reads the server configuration from environment variables
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.StorageBackend {
	case "memory":
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("S3_BUCKET_NAME is required when using the s3 storage backend")
		}
	default:
		return fmt.Errorf("unsupported storage backend: %s", c.StorageBackend)
	}

	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService() (simpleupload.Service, error) {
	repo, err := c.buildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	store, err := c.buildStorageBackend()
	if err != nil {
		return nil, fmt.Errorf("failed to build storage backend: %w", err)
	}

	return simpleupload.New(
		simpleupload.WithRepository(repo),
		simpleupload.WithBlobStore(store),
	)
}

// buildRepository creates a Repository based on the configuration. With a
// postgres URL the schema is synced before the pool is handed out.
func (c *ServerConfig) buildRepository() (simpleupload.Repository, error) {
	if c.DatabaseURL == "" {
		return memoryrepo.New(), nil
	}

	if err := postgresrepo.Migrate(c.DatabaseURL); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	pool, err := pgxpool.New(context.Background(), c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return postgresrepo.NewWithPool(pool), nil
}

// buildStorageBackend creates a BlobStore based on the configuration
func (c *ServerConfig) buildStorageBackend() (simpleupload.BlobStore, error) {
	switch c.StorageBackend {
	case "memory":
		return memorystorage.New(), nil
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.Bucket,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			PublicBaseURL:          c.S3.PublicBaseURL,
			CreateBucketIfNotExist: c.S3.CreateBucketIfNotExist,
		})
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", c.StorageBackend)
	}
}
