package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the server.
type Config struct {
	Port string

	// BookingStore selects the repository backend: "file", "postgres" or "mongo".
	BookingStore string
	DataFile     string
	DatabaseURL  string
	MongoURI     string
	MongoDB      string

	// BookingTZ is the school's local timezone used to anchor date+time
	// comparisons against "now".
	BookingTZ string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string

	SnapshotDir      string
	SnapshotSchedule string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		BookingStore: getEnv("BOOKING_STORE", "file"),
		DataFile:     getEnv("DATA_FILE", "data/bookings.json"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "auditorium"),

		BookingTZ: getEnv("BOOKING_TZ", "Asia/Dubai"),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("SENDGRID_FROM_EMAIL", ""),
		EmailFromName:  getEnv("SENDGRID_FROM_NAME", "JSS International School"),

		SnapshotDir:      getEnv("SNAPSHOT_DIR", "data/snapshots"),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 2 * * *"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
