package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port             string
	Origin           string
	Environment      string
	SessionSecret    string
	DataDir          string
	UploadDir        string
	AlertHorizonDays int
	Database         DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Path string
	DSN  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// SHELTER_DATA_DIR selects where both the database file and uploads live
	dataDir := getEnv("SHELTER_DATA_DIR", "./data")
	uploadDir := getEnv("UPLOAD_DIR", filepath.Join(dataDir, "uploads"))

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "shelter.db")
	dbConfig := DatabaseConfig{
		Path: dbPath,
		DSN:  fmt.Sprintf("%s?_foreign_keys=on", dbPath),
	}

	horizonDays, err := strconv.Atoi(getEnv("ALERT_HORIZON_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_HORIZON_DAYS: %w", err)
	}

	return &Config{
		Port:             getEnv("PORT", "5000"),
		Origin:           getEnv("ORIGIN", "http://localhost:5000"),
		Environment:      getEnv("APP_ENV", "development"),
		SessionSecret:    getEnv("SESSION_SECRET", "dev_session_secret"),
		DataDir:          dataDir,
		UploadDir:        uploadDir,
		AlertHorizonDays: horizonDays,
		Database:         dbConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
