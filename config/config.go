package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	// Storage
	StoreDriver string

	// Database
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	DBConnectRetries int

	// Server
	ServerPort         string
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		StoreDriver: getEnv("STORE_DRIVER", StoreDriverPostgres),

		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "railpass123"),
		DBName:           getEnv("DB_NAME", "railway"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		DBConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 30),

		ServerPort:         getEnv("SERVER_PORT", "8080"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if !validOrigins(config.CORSAllowedOrigins) {
		log.Printf("WARNING: Invalid CORS_ALLOWED_ORIGINS: %v (using * as fallback)\n", config.CORSAllowedOrigins)
		config.CORSAllowedOrigins = []string{"*"}
	}

	switch config.StoreDriver {
	case StoreDriverPostgres:
		if os.Getenv("DB_PASSWORD") == "" {
			log.Println("WARNING: DB_PASSWORD not set, using default")
		}
	case StoreDriverMemory:
		log.Println("WARNING: using in-memory store, data is lost on restart")
	default:
		log.Printf("WARNING: Unknown STORE_DRIVER: %s (using postgres as fallback)\n", config.StoreDriver)
		config.StoreDriver = StoreDriverPostgres
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Printf("WARNING: invalid %s: %q (using %d)\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// validOrigins reports whether origins are accepted by the CORS middleware:
// "*" or absolute http(s) origins
func validOrigins(origins []string) bool {
	if len(origins) == 0 {
		return false
	}
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return false
		}
	}
	return true
}
