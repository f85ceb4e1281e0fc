package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendDynamoDB = "dynamodb"
)

// Config holds all configuration values
type Config struct {
	Port         int
	LogLevel     string
	MaxBodyBytes int64

	// Pass template
	TeamIdentifier     string
	PassTypeIdentifier string
	OrganizationName   string
	Description        string
	LogoText           string
	AssetsDir          string
	ContactEmail       string

	// Signing material, PEM encoded
	Certificate     []byte
	PrivateKey      []byte
	Passphrase      string
	WWDRCertificate []byte

	// Pass store
	StoreBackend  string
	StoreCapacity int
	StoreTTL      time.Duration
	RedisURI      string
	PassesTable   string

	// DynamoDB
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	// Thumbnail download limits
	ImageMaxBytes        int64
	ImageMaxPixels       int64
	ImageResponseTimeout time.Duration
	ImageDeadline        time.Duration
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	capacity, err := strconv.Atoi(getEnvOrDefault("PASS_STORE_CAPACITY", "10000"))
	if err != nil || capacity <= 0 {
		return nil, fmt.Errorf("invalid PASS_STORE_CAPACITY: %q", os.Getenv("PASS_STORE_CAPACITY"))
	}

	storeTTL, err := time.ParseDuration(getEnvOrDefault("PASS_STORE_TTL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PASS_STORE_TTL: %w", err)
	}

	maxBytes, err := strconv.ParseInt(getEnvOrDefault("IMAGE_MAX_BYTES", "2097152"), 10, 64)
	if err != nil || maxBytes <= 0 {
		return nil, fmt.Errorf("invalid IMAGE_MAX_BYTES: %q", os.Getenv("IMAGE_MAX_BYTES"))
	}

	maxPixels, err := strconv.ParseInt(getEnvOrDefault("IMAGE_MAX_PIXELS", "268402689"), 10, 64)
	if err != nil || maxPixels <= 0 {
		return nil, fmt.Errorf("invalid IMAGE_MAX_PIXELS: %q", os.Getenv("IMAGE_MAX_PIXELS"))
	}

	maxBody, err := strconv.ParseInt(getEnvOrDefault("MAX_BODY_BYTES", "102400"), 10, 64)
	if err != nil || maxBody <= 0 {
		return nil, fmt.Errorf("invalid MAX_BODY_BYTES: %q", os.Getenv("MAX_BODY_BYTES"))
	}

	responseTimeout, err := time.ParseDuration(getEnvOrDefault("IMAGE_RESPONSE_TIMEOUT", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMAGE_RESPONSE_TIMEOUT: %w", err)
	}

	deadline, err := time.ParseDuration(getEnvOrDefault("IMAGE_DEADLINE", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMAGE_DEADLINE: %w", err)
	}

	backend := strings.ToLower(strings.TrimSpace(getEnvOrDefault("PASS_STORE_BACKEND", StoreBackendMemory)))
	switch backend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendDynamoDB:
	default:
		return nil, fmt.Errorf("invalid PASS_STORE_BACKEND: %q", backend)
	}

	teamID := os.Getenv("APPLE_DEVELOPER_TEAM_ID")
	if teamID == "" {
		return nil, fmt.Errorf("APPLE_DEVELOPER_TEAM_ID environment variable is required")
	}

	cert, err := decodeBase64Env("PASS_CERTIFICATE", true)
	if err != nil {
		return nil, err
	}
	key, err := decodeBase64Env("PASS_PRIVATE_KEY", true)
	if err != nil {
		return nil, err
	}
	wwdr, err := decodeBase64Env("PASS_WWDR_CERTIFICATE", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		LogLevel:     os.Getenv("LOG_LEVEL"),
		MaxBodyBytes: maxBody,

		TeamIdentifier:     teamID,
		PassTypeIdentifier: getEnvOrDefault("PASS_TYPE_IDENTIFIER", "pass.br.ufpe.cin.academy.gera"),
		OrganizationName:   getEnvOrDefault("PASS_ORGANIZATION_NAME", "Gera"),
		Description:        getEnvOrDefault("PASS_DESCRIPTION", "Cartão de Cobrança Gera"),
		LogoText:           getEnvOrDefault("PASS_LOGO_TEXT", "Gera"),
		AssetsDir:          getEnvOrDefault("PASS_ASSETS_DIR", "assets/images"),
		ContactEmail:       os.Getenv("CONTACT_EMAIL"),

		Certificate:     cert,
		PrivateKey:      key,
		Passphrase:      os.Getenv("PASS_PASSPHRASE"),
		WWDRCertificate: wwdr,

		StoreBackend:  backend,
		StoreCapacity: capacity,
		StoreTTL:      storeTTL,
		RedisURI:      getEnvOrDefault("REDIS_URI", "redis://localhost:6379"),
		PassesTable:   getEnvOrDefault("PASSES_TABLE", "passes"),

		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		ImageMaxBytes:        maxBytes,
		ImageMaxPixels:       maxPixels,
		ImageResponseTimeout: responseTimeout,
		ImageDeadline:        deadline,
	}, nil
}

func decodeBase64Env(key string, required bool) ([]byte, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		if required {
			return nil, fmt.Errorf("%s environment variable is required", key)
		}
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
