package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	OCR      OCRConfig
	LLM      LLMConfig
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

// StorageConfig holds upload storage configuration. The directory is
// injected rather than fixed so tests can isolate storage per run.
type StorageConfig struct {
	UploadDir string
}

// OCRConfig holds text-acquisition configuration
type OCRConfig struct {
	Pdftoppm      string
	Pdftotext     string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// LLMConfig holds completion oracle configuration
type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
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
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "./pdf_samples"),
		},
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM_BIN", ""),
			Pdftotext:     getEnv("PDFTOTEXT_BIN", ""),
			Tesseract:     getEnv("TESSERACT_BIN", ""),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		LLM: LLMConfig{
			BaseURL: getEnv("OLLAMA_API_URL", "http://localhost:11434"),
			Model:   getEnv("OLLAMA_MODEL", "phi3"),
			Timeout: getEnvAsDuration("OLLAMA_TIMEOUT", 120*time.Second),
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
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Storage.UploadDir == "" {
		return NewAppError("CONFIG_ERROR", "UPLOAD_DIR is required", ErrValidation)
	}
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_API_URL is required", ErrValidation)
	}
	return nil
}
