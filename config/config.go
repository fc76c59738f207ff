package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultStepTokenExpiryMin    = 5
	DefaultSessionTokenExpiryMin = 1440
	DefaultCacheDriver           = "memory"
)

type Config struct {
	Env                    string
	Port                   string
	DBURL                  string
	TokenSecret            string
	StepTokenExpiryMin     int
	SessionTokenExpiryMin  int
	CacheDriver            string
	RedisAddr              string
	RedisPassword          string
	TwilioAccountSID       string
	TwilioAuthToken        string
	TwilioVerifyServiceSID string
	SMTPHost               string
	SMTPPort               int
	SMTPUser               string
	SMTPPassword           string
	MailFrom               string
	FrontendURL            string
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Environment variables win over file values; godotenv never overrides
	// variables that are already set.
	switch env {
	case "production":
		_ = godotenv.Load("config/.env.prod")
	default:
		_ = godotenv.Load("config/.env.dev")
	}

	return &Config{
		Env:                    env,
		Port:                   getEnv("PORT", DefaultPort),
		DBURL:                  mustGetEnv("DB_URL"),
		TokenSecret:            mustGetEnv("JWT_SECRET"),
		StepTokenExpiryMin:     getEnvAsInt("STEP_TOKEN_EXPIRY", DefaultStepTokenExpiryMin),
		SessionTokenExpiryMin:  getEnvAsInt("SESSION_TOKEN_EXPIRY", DefaultSessionTokenExpiryMin),
		CacheDriver:            getEnv("CACHE_DRIVER", DefaultCacheDriver),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		TwilioAccountSID:       getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:        getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioVerifyServiceSID: getEnv("TWILIO_VERIFY_SERVICE_SID", ""),
		SMTPHost:               getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:               getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:               getEnv("GMAIL_USER", ""),
		SMTPPassword:           getEnv("GMAIL_PASS", ""),
		MailFrom:               getEnv("MAIL_FROM", getEnv("GMAIL_USER", "")),
		FrontendURL:            getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
