package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisStateDB   int    `mapstructure:"REDIS_STATE_DB"`

	// Remote assistant gateway.
	AssistantBaseURL        string `mapstructure:"ASSISTANT_BASE_URL"`
	AssistantTimeoutSeconds int    `mapstructure:"ASSISTANT_TIMEOUT_SECONDS"`

	// Synthetic booking processing delay bounds (milliseconds).
	BookingDelayMinMs int `mapstructure:"BOOKING_DELAY_MIN_MS"`
	BookingDelayMaxMs int `mapstructure:"BOOKING_DELAY_MAX_MS"`

	// Placeholder pricing bounds until a live pricing feed exists.
	NightlyEstimateMin    float64 `mapstructure:"NIGHTLY_ESTIMATE_MIN"`
	NightlyEstimateMax    float64 `mapstructure:"NIGHTLY_ESTIMATE_MAX"`
	ActivitiesEstimateMin float64 `mapstructure:"ACTIVITIES_ESTIMATE_MIN"`
	ActivitiesEstimateMax float64 `mapstructure:"ACTIVITIES_ESTIMATE_MAX"`
	BookingSurcharge      float64 `mapstructure:"BOOKING_SURCHARGE"`

	// Firebase Cloud Messaging.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
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
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_STATE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("ASSISTANT_BASE_URL", "http://localhost:8090")
	viper.SetDefault("ASSISTANT_TIMEOUT_SECONDS", 15)
	viper.SetDefault("BOOKING_DELAY_MIN_MS", 2000)
	viper.SetDefault("BOOKING_DELAY_MAX_MS", 4000)
	viper.SetDefault("NIGHTLY_ESTIMATE_MIN", 150.0)
	viper.SetDefault("NIGHTLY_ESTIMATE_MAX", 350.0)
	viper.SetDefault("ACTIVITIES_ESTIMATE_MIN", 100.0)
	viper.SetDefault("ACTIVITIES_ESTIMATE_MAX", 300.0)
	viper.SetDefault("BOOKING_SURCHARGE", 150.0)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

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
