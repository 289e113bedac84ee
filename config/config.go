package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB      int    `mapstructure:"REDIS_SESSION_DB"`
	RedisVerificationDB int    `mapstructure:"REDIS_VERIFICATION_DB"`

	// Aadhaar verification vendor (Cashfree).
	CashfreeBaseURL      string `mapstructure:"CASHFREE_BASE_URL"`
	CashfreeClientID     string `mapstructure:"CASHFREE_CLIENT_ID"`
	CashfreeClientSecret string `mapstructure:"CASHFREE_CLIENT_SECRET"`

	// Google Drive destination.
	DriveFolderID      string `mapstructure:"GOOGLE_DRIVE_FOLDER_ID"`
	DriveSharedDriveID string `mapstructure:"GOOGLE_DRIVE_SHARED_DRIVE_ID"`

	// Delegated OAuth credentials (personal Drive).
	OAuthClientID     string `mapstructure:"GOOGLE_OAUTH_CLIENT_ID"`
	OAuthClientSecret string `mapstructure:"GOOGLE_OAUTH_CLIENT_SECRET"`
	OAuthRedirectURI  string `mapstructure:"GOOGLE_OAUTH_REDIRECT_URI"`
	OAuthRefreshToken string `mapstructure:"GOOGLE_OAUTH_REFRESH_TOKEN"`

	// Service account credentials (shared Drives).
	GoogleType                string `mapstructure:"GOOGLE_TYPE"`
	GoogleProjectID           string `mapstructure:"GOOGLE_PROJECT_ID"`
	GooglePrivateKeyID        string `mapstructure:"GOOGLE_PRIVATE_KEY_ID"`
	GooglePrivateKey          string `mapstructure:"GOOGLE_PRIVATE_KEY"`
	GoogleClientEmail         string `mapstructure:"GOOGLE_CLIENT_EMAIL"`
	GoogleClientID            string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleAuthURI             string `mapstructure:"GOOGLE_AUTH_URI"`
	GoogleTokenURI            string `mapstructure:"GOOGLE_TOKEN_URI"`
	GoogleAuthProviderCertURL string `mapstructure:"GOOGLE_AUTH_PROVIDER_X509_CERT_URL"`
	GoogleClientCertURL       string `mapstructure:"GOOGLE_CLIENT_X509_CERT_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_VERIFICATION_DB", 1)
	viper.SetDefault("CASHFREE_BASE_URL", "https://api.cashfree.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// HasVendorCredentials reports whether the Aadhaar vendor can be called at all.
func (c Config) HasVendorCredentials() bool {
	return c.CashfreeClientID != "" && c.CashfreeClientSecret != ""
}

// HasDelegatedOAuth reports whether the full delegated OAuth credential set is present.
func (c Config) HasDelegatedOAuth() bool {
	return c.OAuthClientID != "" && c.OAuthClientSecret != "" &&
		c.OAuthRedirectURI != "" && c.OAuthRefreshToken != ""
}

// HasServiceAccount reports whether the full service account credential set is present.
func (c Config) HasServiceAccount() bool {
	return c.GoogleType != "" && c.GoogleProjectID != "" && c.GooglePrivateKeyID != "" &&
		c.GooglePrivateKey != "" && c.GoogleClientEmail != "" && c.GoogleClientID != "" &&
		c.GoogleAuthURI != "" && c.GoogleTokenURI != "" &&
		c.GoogleAuthProviderCertURL != "" && c.GoogleClientCertURL != ""
}
