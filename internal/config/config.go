package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LISTEN_ADDR  string
	API_BASE_URL string
	HTTP_TIMEOUT time.Duration
	LOG_LEVEL    string
}

const defaultBaseURL = "https://api.khetconnect.xyz/api/v1/"

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		LISTEN_ADDR:  os.Getenv("LISTEN_ADDR"),
		API_BASE_URL: os.Getenv("API_BASE_URL"),
		HTTP_TIMEOUT: 30 * time.Second,
		LOG_LEVEL:    os.Getenv("LOG_LEVEL"),
	}

	if config.LISTEN_ADDR == "" {
		config.LISTEN_ADDR = ":8080"
	}
	if config.API_BASE_URL == "" {
		config.API_BASE_URL = defaultBaseURL
	}
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			config.HTTP_TIMEOUT = d
		}
	}

	return config, nil
}
