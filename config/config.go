package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Env         string
	CORSOrigins string

	RedisURL   string
	CartTTL    time.Duration
	AddressTTL time.Duration

	OrderAPIURL     string
	OrderAPITimeout time.Duration

	KafkaBrokers string
	KafkaTopic   string

	JWTSecret string
	OTPMode   string // "twilio" or "mock"
	OTPTTL    time.Duration

	StripeSecretKey string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8085"),
		Env:         getEnv("APP_ENV", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:    getDuration("CART_TTL", time.Hour*24*7),
		AddressTTL: getDuration("ADDRESS_TTL", time.Hour*24*30),

		OrderAPIURL:     getEnv("ORDER_API_URL", "http://localhost:5001/api"),
		OrderAPITimeout: getDuration("ORDER_API_TIMEOUT", 30*time.Second),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.placed"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		OTPMode:   getEnv("OTP_MODE", "mock"),
		OTPTTL:    getDuration("OTP_TTL", 5*time.Minute),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", ""),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	return defaultVal
}
