package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"receivables_api/internal/config/connections/mongo"
	"receivables_api/internal/config/connections/s3"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	WebhookURL string
	Mongo      *mongo.Mongo
	S3         *s3.S3
}

func Init(ctx context.Context) *Config {
	_ = godotenv.Load()
	port := getenv("SERVER_PORT", "8000")
	webhookURL := getenv("WEBHOOK_URL", "http://conectasolucoes.dyndns.org:5678/webhook-test/elegantia")

	mg, err := mongo.NewConnection(ctx, mongo.ConnectionInfo{
		Scheme:     getenv("MONGO_SCHEME", "mongodb"),
		User:       getenv("MONGO_USER", ""),
		Password:   getenv("MONGO_PASSWORD", ""),
		Host:       getenv("MONGO_HOST", "127.0.0.1"),
		Port:       getenv("MONGO_PORT", "27017"),
		DB:         getenv("MONGO_DB", "elegantia"),
		AuthSource: getenv("MONGO_AUTH_SOURCE", ""),
		Options:    getenv("MONGO_OPTIONS", ""),
	})
	if err != nil {
		log.Fatal("Mongo connect error:", err)
	}

	// S3 only backs the spreadsheet export; the CRUD surface must come up
	// without it.
	s3c, err := s3.NewConnection(s3.ConnectionInfo{
		Endpoint:  getenv("AWS_ENDPOINT", "http://localhost:9000"),
		AccessKey: getenv("AWS_ACCESS_KEY_ID", "minioadmin"),
		SecretKey: getenv("AWS_SECRET_ACCESS_KEY", "minioadmin"),
		Region:    getenv("AWS_DEFAULT_REGION", "us-east-1"),
		Bucket:    getenv("AWS_BUCKET", "exports"),
		UseSSL:    getenv("AWS_USE_SSL", "false") == "true",
	})
	if err != nil {
		log.Printf("S3 connect error, export disabled: %v", err)
		s3c = nil
	}

	return &Config{
		Port:       port,
		WebhookURL: webhookURL,
		Mongo:      mg,
		S3:         s3c,
	}
}

func (c *Config) CheckConnections(ctx context.Context) error {
	var errs []error

	if c.Mongo == nil || c.Mongo.Client == nil {
		errs = append(errs, errors.New("mongo not initialized"))
	} else if err := c.Mongo.Client.Ping(ctx, nil); err != nil {
		errs = append(errs, fmt.Errorf("mongo ping failed: %w", err))
	}

	if c.S3 != nil && c.S3.Client != nil {
		if ok, err := c.S3.Client.BucketExists(ctx, c.S3.Bucket); err != nil {
			errs = append(errs, fmt.Errorf("s3 bucket check failed: %w", err))
		} else if !ok {
			errs = append(errs, fmt.Errorf("s3 bucket %q not found", c.S3.Bucket))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.Join(errs...)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
