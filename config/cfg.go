package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/sheel/internal/api/http"
	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/bucket"
	"github.com/jekabolt/sheel/internal/listing"
	"github.com/jekabolt/sheel/internal/preference/bunt"
	"github.com/jekabolt/sheel/internal/store"
	"github.com/jekabolt/sheel/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB          store.Config   `mapstructure:"mysql"`
	Logger      log.Config     `mapstructure:"logger"`
	HTTP        httpapi.Config `mapstructure:"http"`
	Auth        auth.Config    `mapstructure:"auth"`
	Bucket      bucket.Config  `mapstructure:"bucket"`
	Preferences bunt.Config    `mapstructure:"preferences"`
	Listing     listing.Config `mapstructure:"listing"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, AUTH_JWT_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	// A .env file next to the binary is optional; real env vars win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	// e.g., mysql.dsn -> MYSQL__DSN, auth.jwt_secret -> AUTH__JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/sheel")
		v.AddConfigPath("/etc/sheel")
		// Try to read config, but don't fail if it doesn't exist
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a DSN from individual MYSQL_* env vars. It returns
// an empty string unless host, user, password and database are all set.
func dsnFromEnv() string {
	mysqlHost := os.Getenv("MYSQL_HOST")
	mysqlPort := os.Getenv("MYSQL_PORT")
	mysqlUser := os.Getenv("MYSQL_USER")
	mysqlPassword := os.Getenv("MYSQL_PASSWORD")
	mysqlDatabase := os.Getenv("MYSQL_DATABASE")

	if mysqlHost == "" || mysqlUser == "" || mysqlPassword == "" || mysqlDatabase == "" {
		return ""
	}
	if mysqlPort == "" {
		mysqlPort = "3306"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.requests_per_minute", 60)
	v.SetDefault("http.max_upload_mb", 64)
	v.SetDefault("http.timeout", "60s")
	v.SetDefault("http.whatsapp_number", "+966552714304")

	v.SetDefault("auth.jwt_ttl", "72h")

	v.SetDefault("preferences.path", "preferences.db")

	v.SetDefault("listing.upload_folder", "properties")
	v.SetDefault("listing.max_submissions", 10)
	v.SetDefault("listing.submission_window", "1h")
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.requests_per_minute", "HTTP_REQUESTS_PER_MINUTE")
	v.BindEnv("http.max_upload_mb", "HTTP_MAX_UPLOAD_MB")
	v.BindEnv("http.timeout", "HTTP_TIMEOUT")
	v.BindEnv("http.whatsapp_number", "HTTP_WHATSAPP_NUMBER")
	v.BindEnv("http.secure_cookies", "HTTP_SECURE_COOKIES")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")
	v.BindEnv("auth.cookie_secure", "AUTH_COOKIE_SECURE")

	// Bucket
	v.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.subdomain_endpoint", "BUCKET_SUBDOMAIN_ENDPOINT")
	v.BindEnv("bucket.insecure", "BUCKET_INSECURE")

	// Preferences
	v.BindEnv("preferences.path", "PREFERENCES_PATH")

	// Listing
	v.BindEnv("listing.upload_folder", "LISTING_UPLOAD_FOLDER")
	v.BindEnv("listing.max_submissions", "LISTING_MAX_SUBMISSIONS")
	v.BindEnv("listing.submission_window", "LISTING_SUBMISSION_WINDOW")
}
