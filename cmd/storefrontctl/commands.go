package main

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"storefront-backend/internal/app"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/logger"
)

func boot() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.New(cfg.Environment), nil
}

// storefrontctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := boot()
		if err != nil {
			return err
		}

		db, err := database.NewDatabaseClient(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.NewMigrator(db.DB(), log).Run(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed successfully")
		return nil
	},
}

// storefrontctl migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "List migrations that have not been applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := boot()
		if err != nil {
			return err
		}

		db, err := database.NewDatabaseClient(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		pending, err := database.NewMigrator(db.DB(), log).Pending(cmd.Context())
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to migrate")
			return nil
		}
		for _, name := range pending {
			fmt.Fprintf(cmd.OutOrStdout(), "pending  %s\n", name)
		}
		return nil
	},
}

// storefrontctl ping-bot
var pingBotCmd = &cobra.Command{
	Use:   "ping-bot",
	Short: "Send a test message to the configured Telegram chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := boot()
		if err != nil {
			return err
		}

		n, err := app.NewNotifier(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		raw, err := n.SendTest(cmd.Context())
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

// storefrontctl endpoints
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List the endpoints served by the gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		h := handlers.New(handlers.Deps{Logger: zerolog.Nop()})
		for _, ep := range h.Endpoints() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %v\n", ep.Name, append(slices.Clone(ep.Methods), http.MethodOptions))
		}
		return nil
	},
}
