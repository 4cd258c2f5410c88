package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
	"github.com/shahedzaman612/Inventory-Backend/internal/config"
	"github.com/shahedzaman612/Inventory-Backend/internal/handlers"
	"github.com/shahedzaman612/Inventory-Backend/internal/mail"
	"github.com/shahedzaman612/Inventory-Backend/internal/middleware"
	"github.com/shahedzaman612/Inventory-Backend/internal/oauth"
	"github.com/shahedzaman612/Inventory-Backend/internal/repo"
	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	inventoryRepo := repo.NewInventoryRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.AuthSecret, cfg.TokenTTL)

	var sender mail.Sender
	if cfg.SMTPHost != "" {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom)
	} else {
		sugar.Warnw("SMTP not configured, emails will be logged only")
		sender = &mail.LogSender{Logger: sugar}
	}

	userService := service.NewUserService(userRepo, tokens, sender, cfg.ClientURL)
	inventoryService := service.NewInventoryService(inventoryRepo, itemRepo)
	itemService := service.NewItemService(itemRepo, inventoryRepo)

	var providers []*oauth.Provider
	if cfg.GoogleClientID != "" {
		providers = append(providers, oauth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectBase))
	}
	if cfg.GithubClientID != "" {
		providers = append(providers, oauth.NewGithub(cfg.GithubClientID, cfg.GithubClientSecret, cfg.OAuthRedirectBase))
	}

	h := handlers.NewHandler(userService, inventoryService, itemService, tokens, providers, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"addr", cfg.RunAddress,
	)
	sugar.Infow("Config",
		"RunAddress", cfg.RunAddress,
		"DatabaseDSN", cfg.DatabaseDSN,
		"ClientURL", cfg.ClientURL,
		"oauth_providers", len(providers),
	)

	if err := http.ListenAndServe(cfg.RunAddress, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
