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

	"github.com/kishanbeldas/pahana-edu/internal/application/auth"
	"github.com/kishanbeldas/pahana-edu/internal/application/billing"
	"github.com/kishanbeldas/pahana-edu/internal/application/inventory"
	"github.com/kishanbeldas/pahana-edu/internal/application/reports"
	"github.com/kishanbeldas/pahana-edu/internal/infrastructure/backend"
	httpRouter "github.com/kishanbeldas/pahana-edu/internal/interfaces/http"
	"github.com/kishanbeldas/pahana-edu/pkg/config"
	"github.com/kishanbeldas/pahana-edu/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola")

	client := backend.NewClient(cfg.Backend)
	billGW := backend.NewBillGateway(client)
	customerGW := backend.NewCustomerGateway(client)
	itemGW := backend.NewItemGateway(client)

	authUC, err := auth.NewAuthUseCase(cfg.Auth.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("usuarios configurados")
	}

	composer := billing.NewComposer(billGW, customerGW, itemGW, log)
	billUC := billing.NewBillUseCase(billGW)
	customerUC := billing.NewCustomerUseCase(customerGW)
	itemUC := inventory.NewItemUseCase(itemGW)
	reportUC := reports.NewReportUseCase(billGW, customerGW, itemGW, log)

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
		Title:    "Pahana Edu Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Composer:   composer,
		BillUC:     billUC,
		CustomerUC: customerUC,
		ItemUC:     itemUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
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

	log.Info().Msg("consola detenida")
}
