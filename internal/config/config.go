package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads an optional .env file into the process environment before Load runs.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is read from the environment. Variable names are the lowercase koanf
// keys upper-cased (DATABASE_URL, TELEGRAM_BOT_TOKEN, ...), which keeps the
// names the hosted functions were already deployed with.
//
// Only the database is required at startup. Per-action secrets stay optional
// so the endpoints that need them can answer with a "not configured" error.
type Config struct {
	// Database
	DatabaseURL   string `koanf:"database_url" validate:"required"`
	RunMigrations bool   `koanf:"run_migrations"`

	// Admin
	AdminPassword string `koanf:"admin_password"`

	// YuKassa
	YooKassaShopID    string `koanf:"yukassa_shop_id"`
	YooKassaSecretKey string `koanf:"yukassa_secret_key"`
	YooKassaAPIURL    string `koanf:"yukassa_api_url" validate:"required,url"`

	// Telegram
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramChatID   string `koanf:"telegram_chat_id"`
	TelegramAPIURL   string `koanf:"telegram_api_url" validate:"required,url"`

	// Email (SES)
	EmailRecipient     string `koanf:"email_recipient" validate:"omitempty,email"`
	EmailSender        string `koanf:"email_sender" validate:"required,email"`
	AWSRegion          string `koanf:"aws_region" validate:"required"`
	AWSAccessKeyID     string `koanf:"aws_access_key_id"`
	AWSSecretAccessKey string `koanf:"aws_secret_access_key"`

	// Supabase storage for product images
	SupabaseURL           string `koanf:"supabase_url" validate:"omitempty,url"`
	SupabaseServiceKey    string `koanf:"supabase_service_key"`
	SupabaseStorageBucket string `koanf:"supabase_storage_bucket"`

	// Timeouts in seconds
	NotifyTimeoutSeconds  int `koanf:"notify_timeout" validate:"min=1"`
	PaymentTimeoutSeconds int `koanf:"payment_timeout" validate:"min=1"`

	// Server
	Port        string `koanf:"port" validate:"required"`
	Environment string `koanf:"environment" validate:"oneof=development production test"`
	PublicHost  string `koanf:"public_host"`

	// Function selects the endpoint served by the lambda host.
	Function string `koanf:"function"`
}

func defaults() *Config {
	return &Config{
		YooKassaAPIURL:        "https://api.yookassa.ru/v3",
		TelegramAPIURL:        "https://api.telegram.org",
		EmailSender:           "noreply@poehali.dev",
		AWSRegion:             "us-east-1",
		SupabaseStorageBucket: "product-images",
		NotifyTimeoutSeconds:  5,
		PaymentTimeoutSeconds: 10,
		Port:                  "8080",
		Environment:           "development",
	}
}

func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func (c *Config) NotifyTimeout() time.Duration {
	return time.Duration(c.NotifyTimeoutSeconds) * time.Second
}

func (c *Config) PaymentTimeout() time.Duration {
	return time.Duration(c.PaymentTimeoutSeconds) * time.Second
}

// TelegramConfigured reports whether both bot credentials are present.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func (c *Config) YooKassaConfigured() bool {
	return c.YooKassaShopID != "" && c.YooKassaSecretKey != ""
}

func (c *Config) StorageConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}
