package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DBConnectionString string
	RedisHost          string
	RedisPort          string
	SessionKey         string

	MistralAPIKey  string
	MistralModel   string
	MistralBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	BackendBaseURL string

	UPIPayeeAddress string
	UPIPayeeName    string

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough is set to dial the server.
func (s SMTPConfig) Enabled() bool {
	return s.Server != "" && s.Port > 0 && s.From != ""
}

// LoadDotEnv reads .env outside production. A missing file is not an error.
func LoadDotEnv() {
	if os.Getenv("ENV") == "production" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment:", err)
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                os.Getenv("ENV"),
		Port:               getenv("PORT", "8000"),
		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		RedisHost:          getenv("REDIS_HOST", "localhost"),
		RedisPort:          getenv("REDIS_PORT", "6379"),
		SessionKey:         os.Getenv("SESSION_KEY"),
		MistralAPIKey:      os.Getenv("MISTRAL_API_KEY"),
		MistralModel:       getenv("MISTRAL_MODEL", "mistral-small-latest"),
		MistralBaseURL:     getenv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		BackendBaseURL:     getenv("BACKEND_BASE_URL", "https://camptradebackend.onrender.com/api"),
		UPIPayeeAddress:    os.Getenv("UPI_PAYEE_ADDRESS"),
		UPIPayeeName:       getenv("UPI_PAYEE_NAME", "CampTrade"),
		SMTP: SMTPConfig{
			Server:   os.Getenv("EMAIL_SMTP_SERVER"),
			Username: os.Getenv("EMAIL_SMTP_USERNAME"),
			Password: os.Getenv("EMAIL_SMTP_PASSWORD"),
			From:     os.Getenv("EMAIL_MESSAGE_FROM"),
		},
	}

	if p := os.Getenv("EMAIL_SMTP_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New("EMAIL_SMTP_PORT must be a number")
		}
		cfg.SMTP.Port = port
	}

	if cfg.DBConnectionString == "" {
		return nil, errors.New("please provide DB_CONNECTION_STRING environment variable")
	}

	if cfg.SessionKey == "" {
		return nil, errors.New("please provide SESSION_KEY environment variable")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
