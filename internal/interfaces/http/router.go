package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Prendas-api/internal/application/auth"
	"github.com/jhoicas/Prendas-api/internal/application/commissions"
	"github.com/jhoicas/Prendas-api/internal/application/inventory"
	"github.com/jhoicas/Prendas-api/internal/application/sales"
	"github.com/jhoicas/Prendas-api/internal/application/usecase"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	CreateProduct    *inventory.CreateProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	SalesUC          *sales.UseCase
	PromotionUC      *usecase.PromotionUseCase
	CommissionsUC    *commissions.UseCase
	UserUC           *usecase.UserUseCase
	ExportUC         *usecase.ExportUseCase
	ReportUC         *usecase.ReportUseCase
	AIUC             *usecase.AIUseCase
	MovementRepo     repository.MovementRepository
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manageRoles := RequireRole(entity.RoleAdmin, entity.RoleOwner)

	// Catálogo de prendas
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.CreateProduct, deps.ExportUC)
	products.Get("/", productHandler.List)
	products.Get("/export", productHandler.Export)
	products.Post("/", manageRoles, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", manageRoles, productHandler.Update)
	products.Delete("/:id", manageRoles, productHandler.Delete)
	products.Get("/:id/movements", productHandler.History)

	// Movimientos de stock
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementRepo)
	protected.Post("/inventory/movements", manageRoles, inventoryHandler.RegisterMovement)
	protected.Get("/movements", inventoryHandler.ListMovements)

	// Ventas y envíos
	saleHandler := NewSaleHandler(deps.SalesUC)
	protected.Post("/sales", saleHandler.Register)
	protected.Post("/sales/order-link", saleHandler.OrderLink)
	protected.Get("/delivery/options", saleHandler.DeliveryOptions)

	// Promociones
	promotions := protected.Group("/promotions")
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	promotions.Get("/", promotionHandler.List)
	promotions.Post("/", manageRoles, promotionHandler.Create)
	promotions.Delete("/:id", manageRoles, promotionHandler.Delete)
	promotions.Post("/suggest", promotionHandler.Suggest)

	// Comisiones
	commissionsGroup := protected.Group("/commissions")
	commissionHandler := NewCommissionHandler(deps.CommissionsUC)
	commissionsGroup.Get("/debts", manageRoles, commissionHandler.Debts)
	commissionsGroup.Post("/pay", RequireRole(entity.RoleAdmin), commissionHandler.Pay)
	commissionsGroup.Get("/payments", commissionHandler.Payments)

	// Usuarios (solo Administrador General)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/dashboard", manageRoles, reportHandler.Dashboard)

	// Resumen IA
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Get("/ai/summary", manageRoles, aiHandler.Summary)
}
