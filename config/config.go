package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultIntakeURL is the Cloudflare worker that receives demo requests
	DefaultIntakeURL = "https://facttech.syoliverts.workers.dev"
	// DefaultIntakeTimeout bounds one intake call
	DefaultIntakeTimeout = 15 * time.Second
	// DefaultSessionTTL is how long an idle visitor workflow is kept in memory
	DefaultSessionTTL = 30 * time.Minute
	// DefaultSubmissionRetention is how long logged attempts are kept (180 days)
	DefaultSubmissionRetention = 180 * 24 * time.Hour
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	AppURL      string
	// Lead intake
	IntakeURL         string
	IntakeTimeout     time.Duration
	DemoReopenOnError bool
	SessionTTL        time.Duration
	// Attempt log
	LogRetention      time.Duration
	PruneSchedule     string
	Timezone          string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage (lead exports)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	ExportDir         string
	ChromePath        string
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether every R2 credential is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

// TurnstileEnabled reports whether demo submissions must pass a CAPTCHA
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "db/leads.db"),
		Environment:        environment,
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		IntakeURL:          getEnv("INTAKE_URL", DefaultIntakeURL),
		IntakeTimeout:      getEnvDuration("INTAKE_TIMEOUT", DefaultIntakeTimeout),
		DemoReopenOnError:  getEnvBool("DEMO_REOPEN_ON_ERROR", true),
		SessionTTL:         getEnvDuration("SESSION_TTL", DefaultSessionTTL),
		LogRetention:       getEnvDuration("SUBMISSION_RETENTION", DefaultSubmissionRetention),
		PruneSchedule:      getEnv("PRUNE_SCHEDULE", "0 3 * * *"),
		Timezone:           getEnv("TIMEZONE", "America/Bogota"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@facttech.app"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "FactTech"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
		ExportDir:          getEnv("EXPORT_DIR", "exports"),
		ChromePath:         getEnv("CHROME_PATH", ""),
	}

	if cfg.IsProduction() && !strings.HasPrefix(cfg.IntakeURL, "https://") {
		log.Fatalf("[CRITICAL] INTAKE_URL must use https in production (current: %s)", cfg.IntakeURL)
	}
	if cfg.IsProduction() && cfg.EmailTestMode {
		log.Println("[WARNING] EMAIL_TEST_MODE is enabled in production; confirmation emails will only be logged")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration parses Go durations ("15s", "2m"); invalid or non-positive values use the default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
