package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is the process configuration read from the environment. main loads
// .env via godotenv/autoload before Load runs.
//
// Required variables fail fast with an error naming every missing one, before
// any external call is attempted.

type Config struct {
	// Database (IAM-authenticated; the metadata token is the password).
	DatabaseEndpoint string
	DatabaseName     string
	DatabaseUser     string

	// Partner API (VSK).
	PartnerBaseURL      string
	PartnerClientID     string
	PartnerClientSecret string

	// Object storage (S3-compatible).
	StorageAccessKeyID     string
	StorageSecretAccessKey string
	StorageBucket          string
	StorageEndpoint        string
	StorageRegion          string

	// Metadata service (infra token).
	MetadataEndpoint string

	// Payment redirect targets passed to the partner.
	PaymentSuccessURL string
	PaymentFailURL    string
}

const (
	defaultPartnerBaseURL  = "https://api.vsk.ru"
	defaultStorageEndpoint = "https://storage.yandexcloud.net"
	defaultStorageRegion   = "ru-central1"
	defaultStorageBucket   = "insurance-documents"
	defaultDatabaseUser    = "insurance-handler"
	defaultMetadataURL     = "http://169.254.169.254/computeMetadata/v1/instance/service-accounts/default/token"
)

func Load() (Config, error) {
	cfg := Config{
		DatabaseEndpoint: os.Getenv("DATABASE_ENDPOINT"),
		DatabaseName:     os.Getenv("DATABASE_NAME"),
		DatabaseUser:     getenvDefault("DATABASE_USER", defaultDatabaseUser),

		PartnerBaseURL:      getenvDefault("PARTNER_BASE_URL", defaultPartnerBaseURL),
		PartnerClientID:     os.Getenv("VSK_CLIENT_ID"),
		PartnerClientSecret: os.Getenv("VSK_CLIENT_SECRET"),

		StorageAccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
		StorageSecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
		StorageBucket:          getenvDefault("STORAGE_BUCKET", defaultStorageBucket),
		StorageEndpoint:        getenvDefault("STORAGE_ENDPOINT", defaultStorageEndpoint),
		StorageRegion:          getenvDefault("STORAGE_REGION", defaultStorageRegion),

		MetadataEndpoint: getenvDefault("METADATA_ENDPOINT", defaultMetadataURL),

		PaymentSuccessURL: getenvDefault("PAYMENT_SUCCESS_URL", "https://vsk.ru/payment/success"),
		PaymentFailURL:    getenvDefault("PAYMENT_FAIL_URL", "https://vsk.ru/payment/fail"),
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"DATABASE_ENDPOINT", cfg.DatabaseEndpoint},
		{"DATABASE_NAME", cfg.DatabaseName},
		{"VSK_CLIENT_ID", cfg.PartnerClientID},
		{"VSK_CLIENT_SECRET", cfg.PartnerClientSecret},
		{"STORAGE_ACCESS_KEY_ID", cfg.StorageAccessKeyID},
		{"STORAGE_SECRET_ACCESS_KEY", cfg.StorageSecretAccessKey},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// DatabaseURL builds the connection string. The password is intentionally
// absent: it is supplied per connection from the infra token.
func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s@%s/%s", c.DatabaseUser, c.DatabaseEndpoint, c.DatabaseName)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
