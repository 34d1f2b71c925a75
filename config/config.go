package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	WhatsAppToken   string
	PhoneNumberID   string
	VerifyToken     string
	GraphAPIURL     string
	Port            string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ConversationTTL time.Duration
	JWTSecret       string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		WhatsAppToken:   getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID:   getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		VerifyToken:     getEnv("WHATSAPP_VERIFY_TOKEN", ""),
		GraphAPIURL:     getEnv("GRAPH_API_URL", "https://graph.facebook.com/v17.0"),
		Port:            getEnv("PORT", "3001"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		ConversationTTL: getEnvDuration("CONVERSATION_TTL", 24*time.Hour),
		JWTSecret:       getEnv("JWT_SECRET", ""),
	}

	if cfg.WhatsAppToken == "" {
		log.Fatal("WHATSAPP_TOKEN environment variable is required")
	}

	if cfg.PhoneNumberID == "" {
		log.Fatal("WHATSAPP_PHONE_NUMBER_ID environment variable is required")
	}

	if cfg.VerifyToken == "" {
		log.Fatal("WHATSAPP_VERIFY_TOKEN environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
