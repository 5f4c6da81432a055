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

	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain/catalog"
	infrapdf "github.com/jhoicas/Mercado-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Mercado-api/internal/infrastructure/sms"
	httpRouter "github.com/jhoicas/Mercado-api/internal/interfaces/http"
	"github.com/jhoicas/Mercado-api/pkg/config"
	"github.com/jhoicas/Mercado-api/pkg/logger"
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

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	kycRepo := postgres.NewKYCRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := catalog.NewResolver(categoryRepo, cfg.Catalog.MaxDepth)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, productRepo, resolver)
	storeUC := usecase.NewStoreUseCase(kycRepo, storeRepo, userRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, storeRepo, productRepo)
	cartUC := usecase.NewCartUseCase(cartRepo)

	receipts := infrapdf.NewMarotoReceiptGenerator()
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, storeRepo, cartRepo, txRunner, receipts)

	otpSender := sms.NewLogSender(log)
	authUC := auth.NewAuthUseCase(userRepo, otpRepo, otpSender,
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		auth.OTPConfig{
			Length:      cfg.OTP.Length,
			TTLMinutes:  cfg.OTP.TTLMinutes,
			MaxAttempts: cfg.OTP.MaxAttempts,
		},
	)

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
		Title:    "Mercado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		StoreUC:     storeUC,
		InventoryUC: inventoryUC,
		CartUC:      cartUC,
		OrderUC:     orderUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
