// Package config provides centralized default values for Festina
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			return
		}
		log.Println("Loaded configuration overrides from .env file")
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

// getEnvSecret is getEnvString without echoing the value.
func getEnvSecret(key string) string {
	val := os.Getenv(key)
	if val != "" {
		log.Printf("Config override: %s=<redacted>", key)
	}
	return val
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

var (
	// Server Configuration
	Port               string
	GinMode            string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string

	// Storefront Platform
	StoreDomain          string
	StorefrontAPIToken   string
	StorefrontAPIVersion string
	AdminAPIToken        string
	MetaobjectID         string
	StorefrontTimeout    time.Duration

	// Response Cache
	StorefrontCacheSize int
	CacheLongTTL        time.Duration
	CacheShortTTL       time.Duration
	WarmOnStartup       bool

	// Newsletter Email
	ResendAPIKey            string
	NewsletterEmailFrom     string
	NewsletterEmailFromName string

	// Logging
	LogLevel  string
	LogFormat string
	LogDir    string
)

func init() {
	Load()
}

// Load (re)reads every setting from the environment.
func Load() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	GinMode = getEnvString("GIN_MODE", "debug")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://[::1]:3000",
	})

	// Storefront Platform
	StoreDomain = getEnvString("PUBLIC_STORE_DOMAIN", "")
	StorefrontAPIToken = getEnvSecret("PUBLIC_STOREFRONT_API_TOKEN")
	StorefrontAPIVersion = getEnvString("PUBLIC_STOREFRONT_API_VERSION", "2024-07")
	AdminAPIToken = getEnvSecret("PRIVATE_ADMIN_API_TOKEN")
	MetaobjectID = getEnvString("METAOBJECT_ID", "")
	StorefrontTimeout = time.Duration(getEnvInt("STOREFRONT_TIMEOUT_SECONDS", 10)) * time.Second

	// Response Cache
	StorefrontCacheSize = getEnvInt("STOREFRONT_CACHE_SIZE", 256)
	CacheLongTTL = time.Duration(getEnvInt("CACHE_LONG_MINUTES", 60)) * time.Minute
	CacheShortTTL = time.Duration(getEnvInt("CACHE_SHORT_SECONDS", 60)) * time.Second
	WarmOnStartup = getEnvBool("WARM_ON_STARTUP", true)

	// Newsletter Email
	ResendAPIKey = getEnvSecret("RESEND_API_KEY")
	NewsletterEmailFrom = getEnvString("NEWSLETTER_EMAIL_FROM", "noreply@festina.com.co")
	NewsletterEmailFromName = getEnvString("NEWSLETTER_EMAIL_FROM_NAME", "Festina")

	// Logging
	LogLevel = getEnvString("LOG_LEVEL", "info")
	LogFormat = getEnvString("LOG_FORMAT", "text")
	LogDir = getEnvString("LOG_DIR", "")
}
