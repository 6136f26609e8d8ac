package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"digital-store-bot/internal/access"
	"digital-store-bot/internal/bot"
	"digital-store-bot/internal/common/config"
	"digital-store-bot/internal/common/logger"
	"digital-store-bot/internal/platform/db"

	adminsqlite "digital-store-bot/internal/features/admin/repository/sqlite"
	adminsvc "digital-store-bot/internal/features/admin/service"
	catalogsqlite "digital-store-bot/internal/features/catalog/repository/sqlite"
	catalogsvc "digital-store-bot/internal/features/catalog/service"
	ordersqlite "digital-store-bot/internal/features/order/repository/sqlite"
	ordersvc "digital-store-bot/internal/features/order/service"
	settingssqlite "digital-store-bot/internal/features/settings/repository/sqlite"
	settingssvc "digital-store-bot/internal/features/settings/service"
	usersqlite "digital-store-bot/internal/features/user/repository/sqlite"
	usersvc "digital-store-bot/internal/features/user/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init("store-bot", cfg.Debug)

	database, err := db.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	users := usersvc.NewUserService(usersqlite.NewSQLiteRepository(database))
	admins := adminsvc.NewAdminService(adminsqlite.NewSQLiteRepository(database))
	catalog := catalogsvc.NewCatalogService(catalogsqlite.NewSQLiteRepository(database))
	orders := ordersvc.NewOrderService(ordersqlite.NewSQLiteRepository(database))
	settings := settingssvc.NewSettingsService(settingssqlite.NewSQLiteRepository(database))

	authz := access.NewAuthorizer(cfg.Telegram.OwnerIDs, admins)

	b, err := bot.New(cfg, authz, users, admins, catalog, orders, settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("bot stopped with error")
	}

	logger.Info().Msg("shutdown complete")
}
