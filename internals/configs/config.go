package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	AppEnv    string

	// AppLocation is the reference timezone for all calendar bucketing
	// (attendance days, schedule weeks). Code below the controller layer
	// must never fall back to time.Local.
	AppLocation = time.UTC
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppEnv = GetEnv("APP_ENV", "development")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}

	tz := GetEnv("APP_TIMEZONE", "Asia/Ho_Chi_Minh")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ Invalid APP_TIMEZONE %q, falling back to UTC: %v", tz, err)
		loc = time.UTC
	}
	AppLocation = loc
	log.Printf("✅ Reference timezone: %s", AppLocation)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction reports whether error internals must be hidden from
// HTTP responses.
func IsProduction() bool {
	return AppEnv == "production"
}
