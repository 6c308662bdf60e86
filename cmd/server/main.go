package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lamsatk/lamsat-backend/internal/config"
	"github.com/lamsatk/lamsat-backend/internal/db"
	httpHandlers "github.com/lamsatk/lamsat-backend/internal/http/handlers"
	httpRouter "github.com/lamsatk/lamsat-backend/internal/http/router"
	"github.com/lamsatk/lamsat-backend/internal/logger"
	"github.com/lamsatk/lamsat-backend/internal/notify"
	"github.com/lamsatk/lamsat-backend/internal/repository"
	"github.com/lamsatk/lamsat-backend/internal/service"
	"github.com/lamsatk/lamsat-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Секрет подписи живёт только в конфигурации и менеджере токенов.
	tokenManager := service.NewTokenManager(cfg.AdminSecret, cfg.TokenTTL)

	// Репозитории.
	requestRepo := repository.NewRequestRepository(dbConn)
	listingRepo := repository.NewListingRepository(dbConn)

	// Коллаборатор уведомлений: webhook, если сконфигурирован.
	var notifier service.Notifier = notify.NopNotifier{}
	if cfg.NotifyWebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.NotifyWebhookURL, cfg.NotifyTimeout)
	}

	// Сервисы.
	refCodes := service.NewRefCodeGenerator(requestRepo)
	requestService := service.NewRequestService(requestRepo, refCodes, notifier, cfg.NotifyTimeout)
	authService := service.NewAuthService(tokenManager, cfg.AdminPassword)
	listingService := service.NewListingService(listingRepo)

	// Вебсокеты: realtime-лента заявок для админки.
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()
	requestService.SetEvents(ws.NewRequestEventsAdapter(hub))

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService, cfg.Env == "production")
	requestHandler := httpHandlers.NewRequestHandler(requestService)
	statusHandler := httpHandlers.NewStatusHandler(requestService)
	listingHandler := httpHandlers.NewListingHandler(listingService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	wsHandler := httpHandlers.NewWSHandler(hub, cfg.AllowedOrigins)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, requestHandler, statusHandler, listingHandler, healthHandler, wsHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
