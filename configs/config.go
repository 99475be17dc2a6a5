package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Seeded staff account. The demo ships with admin/admin123.
	StaffUsername string
	StaffPassword string

	// Fixed verification code handed out in demo mode.
	DemoOTP string

	// Simulated latency for the payment/export stubs.
	StubDelay time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "restaurant.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24) * time.Hour,
		StaffUsername: getEnv("STAFF_USERNAME", "admin"),
		StaffPassword: getEnv("STAFF_PASSWORD", "admin123"),
		DemoOTP:       getEnv("DEMO_OTP", "123456"),
		StubDelay:     time.Duration(getEnvInt("STUB_DELAY_MS", 500)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
