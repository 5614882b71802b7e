// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DataDir         string
	HostAddr        string
	SmtpFrom        string
	SmtpPassword    string
	SmtpHost        string
	SmtpPort        string
	DailyVerseEmail string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		HostAddr:        getEnv("SCRIPTURE_HOST_ADDR", ""),
		SmtpFrom:        getEnv("SMTP_FROM", ""),
		SmtpPassword:    getEnv("SMTP_PASSWORD", ""),
		SmtpHost:        getEnv("SMTP_HOST", ""),
		SmtpPort:        getEnv("SMTP_PORT", "587"),
		DailyVerseEmail: getEnv("DAILY_VERSE_EMAIL", ""),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
