package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	FrontendURL      string
	GoogleClientID   string
	GoogleAPIKey     string
	GmailQuery       string
	GmailMaxMessages int
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	maxMessages, err := strconv.Atoi(getEnv("GMAIL_MAX_MESSAGES", "50"))
	if err != nil || maxMessages <= 0 {
		maxMessages = 50
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		GoogleClientID:   getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleAPIKey:     getEnv("GOOGLE_API_KEY", ""),
		GmailQuery:       getEnv("GMAIL_QUERY", "in:inbox newer_than:365d"),
		GmailMaxMessages: maxMessages,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
