package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	FrontendURL string

	// Store connection tuning
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	MinPoolSize    uint64
	IdleThreshold  time.Duration

	// Read-path retry policy
	ReadRetries    int
	ReadRetryDelay time.Duration

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "petreminder"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		MaxPoolSize:    uint64(getEnvInt("MONGO_MAX_POOL", 10)),
		MinPoolSize:    uint64(getEnvInt("MONGO_MIN_POOL", 0)),
		IdleThreshold:  getEnvDuration("MONGO_IDLE_THRESHOLD", 4*time.Minute),

		ReadRetries:    getEnvInt("READ_RETRIES", 3),
		ReadRetryDelay: getEnvDuration("READ_RETRY_DELAY", time.Second),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
