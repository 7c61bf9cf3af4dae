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

	"github.com/jhoicas/Prendas-api/internal/application/auth"
	"github.com/jhoicas/Prendas-api/internal/application/commissions"
	"github.com/jhoicas/Prendas-api/internal/application/inventory"
	"github.com/jhoicas/Prendas-api/internal/application/sales"
	"github.com/jhoicas/Prendas-api/internal/application/usecase"
	infraai "github.com/jhoicas/Prendas-api/internal/infrastructure/ai"
	"github.com/jhoicas/Prendas-api/internal/infrastructure/excel"
	"github.com/jhoicas/Prendas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Prendas-api/internal/interfaces/http"
	"github.com/jhoicas/Prendas-api/pkg/config"
	"github.com/jhoicas/Prendas-api/pkg/logger"
)

// @title                      Prendas API
// @version                    1.0
// @description                API de inventario y ventas de prendas: stock, ventas con promociones y delivery, comisiones y usuarios.
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
// @description                Token JWT con prefijo "Bearer "
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

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	paymentRepo := postgres.NewCommissionPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := inventory.NewCreateProductUseCase(txRunner)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo)
	salesUC := sales.NewUseCase(txRunner, productRepo, promotionRepo)
	commissionsUC := commissions.NewUseCase(txRunner, movementRepo, paymentRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo, productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	exportUC := usecase.NewExportUseCase(productRepo, excel.NewInventoryExporter())
	reportUC := usecase.NewReportUseCase(productRepo, movementRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(productRepo, movementRepo, anthropicSvc)

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
		Title:    "Prendas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CreateProduct:    createProductUC,
		RegisterMovement: registerMovementUC,
		SalesUC:          salesUC,
		PromotionUC:      promotionUC,
		CommissionsUC:    commissionsUC,
		UserUC:           userUC,
		ExportUC:         exportUC,
		ReportUC:         reportUC,
		AIUC:             aiUC,
		MovementRepo:     movementRepo,
		JWTSecret:        cfg.JWT.Secret,
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
