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
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Shop identity, interpolated into reminder templates and calendar exports.
	ShopName    string `mapstructure:"SHOP_NAME"`
	ShopPhone   string `mapstructure:"SHOP_PHONE"`
	ShopAddress string `mapstructure:"SHOP_ADDRESS"`
	ShopEmail   string `mapstructure:"SHOP_EMAIL"`
	ShopDomain  string `mapstructure:"SHOP_DOMAIN"`

	// SMTP configuration for outgoing email.
	SMTPHost  string `mapstructure:"SMTP_HOST"`
	SMTPPort  int    `mapstructure:"SMTP_PORT"`
	EmailUser string `mapstructure:"EMAIL_USER"`
	EmailPass string `mapstructure:"EMAIL_PASS"`

	// SMS gateway webhook.
	SMSWebhookURL   string `mapstructure:"SMS_WEBHOOK_URL"`
	SMSWebhookToken string `mapstructure:"SMS_WEBHOOK_TOKEN"`
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
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SHOP_NAME", "BarberPro")
	viper.SetDefault("SHOP_PHONE", "(208) 123-4567")
	viper.SetDefault("SHOP_ADDRESS", "123 Main Street, Downtown")
	viper.SetDefault("SHOP_EMAIL", "appointments@barberpro.com")
	viper.SetDefault("SHOP_DOMAIN", "barberpro.com")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 1025)
	viper.SetDefault("EMAIL_USER", "appointments@barberpro.com")
	viper.SetDefault("EMAIL_PASS", "")
	viper.SetDefault("SMS_WEBHOOK_URL", "")
	viper.SetDefault("SMS_WEBHOOK_TOKEN", "")

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
