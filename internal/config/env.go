package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	TableModeHTML = "html"
	TableModeJSON = "json"

	IntakeMultipart = "multipart"
	IntakeBase64    = "base64"
)

type Config struct {
	GeminiAPIKey   string
	GenModel       string
	Port           string
	MaxUploadBytes int64
	TableMode      string
	IntakeMode     string

	// Cloudflare R2 credentials for the pre-signed upload flow. Optional:
	// when absent, only the direct intake endpoint is registered.
	CFAccountID       string
	CFAccessKeyID     string
	CFSecretAccessKey string
	CFBucketName      string
	PresignTTL        time.Duration
}

// LoadConfig loads the environment variables and returns config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GenModel:       getEnv("GEN_MODEL", "gemini-2.0-flash"),
		Port:           getEnv("PORT", "8080"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		TableMode:      getEnv("TABLE_MODE", TableModeHTML),
		IntakeMode:     getEnv("INTAKE_MODE", IntakeMultipart),

		CFAccountID:       getEnv("CF_ACCOUNT_ID", ""),
		CFAccessKeyID:     getEnv("CF_ACCESS_KEY_ID", ""),
		CFSecretAccessKey: getEnv("CF_SECRET_ACCESS_KEY", ""),
		CFBucketName:      getEnv("CF_BUCKET_NAME", ""),
		PresignTTL:        getEnvDuration("PRESIGN_TTL", 10*time.Minute),
	}

	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}
	if cfg.TableMode != TableModeHTML && cfg.TableMode != TableModeJSON {
		log.Fatalf("TABLE_MODE must be %q or %q, got %q", TableModeHTML, TableModeJSON, cfg.TableMode)
	}
	if cfg.IntakeMode != IntakeMultipart && cfg.IntakeMode != IntakeBase64 {
		log.Fatalf("INTAKE_MODE must be %q or %q, got %q", IntakeMultipart, IntakeBase64, cfg.IntakeMode)
	}

	// R2 honors pre-signed URL expiries between 10 minutes and an hour here.
	if cfg.PresignTTL < 10*time.Minute {
		cfg.PresignTTL = 10 * time.Minute
	}
	if cfg.PresignTTL > time.Hour {
		cfg.PresignTTL = time.Hour
	}

	return cfg
}

// HasStorage reports whether the R2 credentials needed for the pre-signed
// upload flow are configured.
func (c *Config) HasStorage() bool {
	return c.CFAccountID != "" && c.CFAccessKeyID != "" && c.CFSecretAccessKey != "" && c.CFBucketName != ""
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, def int64) int64 {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a duration, using default %s", key, v, def)
		return def
	}
	return d
}
