package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	MongoURI          string
	MongoDatabase     string
	Port              string
	AWSRegion         string
	AWSBucketName     string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	ImportAllowedHost string
	FetchTimeout      time.Duration
	BrowserFallback   bool
	ChromeDriverPath  string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017/")
	MongoDatabase = getEnv("MONGO_DATABASE", "tonies")
	Port = getEnv("PORT", "8080")

	AWSRegion = getEnv("AWS_REGION", "eu-central-1")
	AWSBucketName = getEnv("AWS_BUCKET_NAME", "tonies-images")

	JWTSecret = os.Getenv("JWT_SECRET")
	AdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	ImportAllowedHost = getEnv("IMPORT_ALLOWED_HOST", "tonies.com")

	FetchTimeout = 10 * time.Second
	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			FetchTimeout = d
		} else {
			log.Printf("Invalid FETCH_TIMEOUT %q, using %s", raw, FetchTimeout)
		}
	}

	// Headless browsers are opt-out; plain HTTP is always tried first.
	BrowserFallback = getEnv("BROWSER_FALLBACK", "true") == "true"
	ChromeDriverPath = getEnv("CHROMEDRIVER_PATH", "/usr/local/bin/chromedriver")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
