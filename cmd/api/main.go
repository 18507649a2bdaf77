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

	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/infrastructure/excel"
	"github.com/jhoicas/Compras-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	priceRepo := postgres.NewPriceHistoryRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, priceRepo)
	quoteUC := procurement.NewQuoteUseCase(quoteRepo, supplierRepo, materialRepo, priceRepo)
	createOrderUC := procurement.NewCreateOrderUseCase(txRunner, supplierRepo, materialRepo, orderRepo, quoteRepo)

	// PDF: representación imprimible de la orden de compra
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderPDFUC := procurement.NewOrderPDFUseCase(
		orderRepo, companyRepo, supplierRepo, materialRepo, pdfGenerator,
	)

	// Canales de notificación al proveedor. WhatsApp queda deshabilitado si
	// no hay token configurado; el caso de uso lo reporta por canal.
	mailSender := notify.NewGomailSender(cfg.SMTP)
	whatsappClient := notify.NewWhatsAppClient(cfg.WhatsApp)
	notifyUC := procurement.NewNotifyOrderUseCase(
		orderRepo, companyRepo, supplierRepo, orderPDFUC, mailSender, whatsappClient,
	)

	importUC := procurement.NewImportUseCase(excel.NewParser(), materialRepo, supplierRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		SupplierUC:  supplierUC,
		MaterialUC:  materialUC,
		QuoteUC:     quoteUC,
		CreateOrder: createOrderUC,
		OrderPDF:    orderPDFUC,
		NotifyOrder: notifyUC,
		ImportUC:    importUC,
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
