package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mercadito-app/mercadito-api/internal/application/analytics"
	"github.com/mercadito-app/mercadito-api/internal/application/auth"
	"github.com/mercadito-app/mercadito-api/internal/application/inventory"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/infrastructure/cache"
	"github.com/mercadito-app/mercadito-api/internal/infrastructure/notify"
	"github.com/mercadito-app/mercadito-api/internal/infrastructure/postgres"
	httpRouter "github.com/mercadito-app/mercadito-api/internal/interfaces/http"
	"github.com/mercadito-app/mercadito-api/pkg/config"
	"github.com/mercadito-app/mercadito-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	cacheClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	lowStockNotifier := notify.NewLogNotifier(log)

	authUC := auth.NewUseCase(userRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	stockUC := inventory.NewStockUseCase(txRunner, productRepo, movementRepo, lowStockNotifier)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	couponUC := usecase.NewCouponUseCase(couponRepo)
	listingUC := usecase.NewListingUseCase(listingRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo)
	contentUC := usecase.NewContentUseCase(contentRepo, cacheClient, log)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mercadito API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StockUC:     stockUC,
		StoreUC:     storeUC,
		CouponUC:    couponUC,
		ListingUC:   listingUC,
		TicketUC:    ticketUC,
		ContentUC:   contentUC,
		DashboardUC: dashboardUC,
		Cache:       cacheClient,
		JWTSecret:   cfg.JWT.Secret,
		RateLimit:   cfg.Rate.Requests,
		RateWindow:  time.Duration(cfg.Rate.WindowSeconds) * time.Second,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
