// Package app wires configuration into the store, outbound clients and
// endpoint handlers shared by every host binary.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/notifier"
	"storefront-backend/internal/supabase"
	"storefront-backend/internal/telegram"
	"storefront-backend/internal/yookassa"
)

type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	DB       *database.DatabaseClient
	Notifier *notifier.Notifier
	Handler  *handlers.Handler
}

func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	db, err := database.NewDatabaseClient(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := database.NewMigrator(db.DB(), logger).Run(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	n, err := NewNotifier(ctx, cfg, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	deps := handlers.Deps{
		Store:         db,
		Notifier:      n,
		Payments:      yookassa.NewClient(cfg.YooKassaAPIURL, cfg.YooKassaShopID, cfg.YooKassaSecretKey, cfg.PaymentTimeout()),
		AdminPassword: cfg.AdminPassword,
		PublicHost:    cfg.PublicHost,
		Logger:        logger,
	}

	if cfg.StorageConfigured() {
		images, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			logger.Warn().Err(err).Msg("product image uploads disabled")
		} else {
			deps.Images = images
		}
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Notifier: n,
		Handler:  handlers.New(deps),
	}, nil
}

// NewNotifier builds the chat and email channels from configuration. A
// missing bot token leaves the chat channel nil; a missing recipient leaves
// email disabled.
func NewNotifier(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*notifier.Notifier, error) {
	var chat notifier.ChatSender
	if cfg.TelegramBotToken != "" {
		chat = telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.NotifyTimeout())
	}

	var mail notifier.Mailer
	if cfg.EmailRecipient != "" {
		m, err := mailer.NewSESMailer(ctx, mailer.Options{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Sender:          cfg.EmailSender,
		})
		if err != nil {
			return nil, err
		}
		mail = m
	}

	return notifier.New(chat, mail, notifier.Options{
		ChatID:         cfg.TelegramChatID,
		EmailRecipient: cfg.EmailRecipient,
		Timeout:        cfg.NotifyTimeout(),
	}, logger), nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
