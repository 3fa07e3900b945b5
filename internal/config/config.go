package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Generation provider
	AnthropicAPIKey   string
	ClaudeModel       string
	ClaudeTemperature float64

	// Google access (roster sheet + content docs)
	GoogleCredentialsFile string
	RosterSpreadsheetID   string
	RosterRange           string
	EventDetailsDocID     string
	PreviousEventDocID    string
	LineupDocID           string
	UpdatedDetailsDocID   string

	// When set, event content is read from local text files in this
	// directory instead of Google Docs (dev mode).
	ContentDir string

	// Email delivery
	ResendAPIKey string
	EmailFrom    string
	HostEmail    string

	// Optional with defaults
	HTTPPort   int
	DBPath     string
	ArchiveDir string
}

func LoadFromEnv() *Config {
	return &Config{
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		ClaudeModel:       getEnvOrDefault("SULLSTICE_CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ClaudeTemperature: getEnvAsFloatOrDefault("SULLSTICE_CLAUDE_TEMPERATURE", 0.7),

		GoogleCredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		RosterSpreadsheetID:   os.Getenv("SULLSTICE_ROSTER_SPREADSHEET_ID"),
		RosterRange:           getEnvOrDefault("SULLSTICE_ROSTER_RANGE", "Emails!A2:F500"),
		EventDetailsDocID:     os.Getenv("SULLSTICE_EVENT_DETAILS_DOC_ID"),
		PreviousEventDocID:    os.Getenv("SULLSTICE_PREVIOUS_EVENT_DOC_ID"),
		LineupDocID:           os.Getenv("SULLSTICE_LINEUP_DOC_ID"),
		UpdatedDetailsDocID:   os.Getenv("SULLSTICE_UPDATED_DETAILS_DOC_ID"),

		ContentDir: os.Getenv("SULLSTICE_CONTENT_DIR"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getEnvOrDefault("SULLSTICE_EMAIL_FROM", "no-reply@sullstice.com"),
		HostEmail:    getEnvOrDefault("SULLSTICE_HOST_EMAIL", "sullhouse@gmail.com"),

		HTTPPort:   getEnvAsIntOrDefault("SULLSTICE_HTTP_PORT", 8080),
		DBPath:     getEnvOrDefault("SULLSTICE_DB_PATH", "./sullstice.db"),
		ArchiveDir: getEnvOrDefault("SULLSTICE_ARCHIVE_DIR", "./archive"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
