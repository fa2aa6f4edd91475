package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	BaseURL       string // public URL embedded in verification/reset links

	// Access token config
	TokenSecret       string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh token config
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// Verification / reset token lifetimes
	VerificationTokenTTL time.Duration
	ResetTokenTTL        time.Duration

	// Auth strategies enabled for login, comma separated (e.g. "local,google")
	AuthStrategies []string

	// Outbound mail (SMTP)
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Analytics
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("TOKEN_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "cardlink-backend")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("VERIFICATION_TOKEN_TTL", "24h")
	viper.SetDefault("RESET_TOKEN_TTL", "1h")
	viper.SetDefault("AUTH_STRATEGIES", "local")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "")
	viper.SetDefault("MAIL_FROM_NAME", "Techhype")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.BaseURL = viper.GetString("BASE_URL")

	cfg.TokenSecret = viper.GetString("TOKEN_SECRET")
	if cfg.TokenSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: TOKEN_SECRET not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "default_insecure_refresh_secret_please_change_this_!@#$" {
		log.Println("Warning: REFRESH_TOKEN_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}
	cfg.RefreshTokenExpiryDuration = parseDurationOr("REFRESH_TOKEN_EXPIRY_DURATION", time.Hour*24*7)

	cfg.VerificationTokenTTL = parseDurationOr("VERIFICATION_TOKEN_TTL", 24*time.Hour)
	cfg.ResetTokenTTL = parseDurationOr("RESET_TOKEN_TTL", time.Hour)

	for _, s := range strings.Split(viper.GetString("AUTH_STRATEGIES"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			cfg.AuthStrategies = append(cfg.AuthStrategies, s)
		}
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	cfg.MailFromName = viper.GetString("MAIL_FROM_NAME")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Verification and reset emails will not be delivered.")
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
