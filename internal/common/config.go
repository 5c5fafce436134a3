package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// OCRConfig holds OCR collaborator configuration
type OCRConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LLMConfig holds AI extractor configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds the orchestrator tunables that the legacy
// implementation kept hardcoded.
type PipelineConfig struct {
	ConfidenceThreshold float32
	MaxAttempts         int
	RetryBaseDelay      time.Duration
	StageTimeout        time.Duration
	SessionRetention    time.Duration
	Workers             int
	QueueSize           int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET_NAME", "scouter-receipts"),
			UseSSL:    getEnvAsBool("S3_USE_SSL", false),
		},
		OCR: OCRConfig{
			BaseURL: getEnv("VISION_BASE_URL", "https://vision.googleapis.com/v1"),
			APIKey:  getEnv("VISION_API_KEY", ""),
			Timeout: getEnvAsDuration("VISION_TIMEOUT", 45*time.Second),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			ConfidenceThreshold: getEnvAsFloat32("CONFIDENCE_THRESHOLD", 0.75),
			MaxAttempts:         getEnvAsInt("STAGE_MAX_ATTEMPTS", 3),
			RetryBaseDelay:      getEnvAsDuration("STAGE_RETRY_BASE_DELAY", 500*time.Millisecond),
			StageTimeout:        getEnvAsDuration("STAGE_TIMEOUT", 45*time.Second),
			SessionRetention:    getEnvAsDuration("SESSION_RETENTION", time.Hour),
			Workers:             getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:           getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return WrapError(ErrInvalidInput, "DB_URL is required")
	}
	if c.LLM.APIKey == "" {
		return WrapError(ErrInvalidInput, "OPENAI_API_KEY is required")
	}
	if c.OCR.APIKey == "" {
		return WrapError(ErrInvalidInput, "VISION_API_KEY is required")
	}
	if c.Server.GRPCAddr == "" {
		return WrapError(ErrInvalidInput, "GRPC_ADDR is required")
	}
	if c.Pipeline.ConfidenceThreshold < 0 || c.Pipeline.ConfidenceThreshold > 1 {
		return WrapError(ErrInvalidInput, "CONFIDENCE_THRESHOLD must be within [0,1]")
	}
	if c.Pipeline.MaxAttempts < 1 {
		return WrapError(ErrInvalidInput, "STAGE_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}
