package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	SupplierUC  *usecase.SupplierUseCase
	MaterialUC  *usecase.MaterialUseCase
	QuoteUC     *procurement.QuoteUseCase
	CreateOrder *procurement.CreateOrderUseCase
	OrderPDF    *procurement.OrderPDFUseCase
	NotifyOrder *procurement.NotifyOrderUseCase
	ImportUC    *procurement.ImportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// RBAC: consulta solo lee; comprador crea cotizaciones, órdenes y envíos;
// admin además gestiona proveedores, materiales e importaciones.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleComprador, entity.RoleConsulta)
	buyer := RequireRole(entity.RoleAdmin, entity.RoleComprador)
	admin := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público para bootstrap de la primera empresa)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Gestión de usuarios de la empresa (solo admin)
	users := protected.Group("/users")
	users.Get("/", admin, authHandler.ListUsers)
	users.Put("/:id", admin, authHandler.UpdateUser)

	importHandler := NewImportHandler(deps.ImportUC)

	// Suppliers (lecturas: cualquier rol; escrituras: admin)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", anyRole, supplierHandler.List)
	suppliers.Post("/", admin, supplierHandler.Create)
	suppliers.Post("/import", admin, importHandler.ImportSuppliers)
	suppliers.Get("/:id", anyRole, supplierHandler.GetByID)
	suppliers.Put("/:id", admin, supplierHandler.Update)
	suppliers.Delete("/:id", admin, supplierHandler.Delete)

	// Materials (lecturas: cualquier rol; escrituras: admin)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", anyRole, materialHandler.List)
	materials.Post("/", admin, materialHandler.Create)
	materials.Post("/import", admin, importHandler.ImportMaterials)
	materials.Get("/:id", anyRole, materialHandler.GetByID)
	materials.Get("/:id/prices", anyRole, materialHandler.PriceHistory)
	materials.Put("/:id", admin, materialHandler.Update)
	materials.Delete("/:id", admin, materialHandler.Delete)

	// Solicitudes de cotización (lecturas: cualquier rol; escrituras: comprador o admin)
	quotes := protected.Group("/quote-requests")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Get("/", anyRole, quoteHandler.List)
	quotes.Get("/:id", anyRole, quoteHandler.GetByID)
	quotes.Post("/", buyer, quoteHandler.Create)
	quotes.Post("/:id/quote", buyer, quoteHandler.RecordQuote)
	quotes.Post("/:id/close", buyer, quoteHandler.Close)

	// Orders (lecturas y PDF: cualquier rol; escrituras: comprador o admin)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderPDF, deps.NotifyOrder)
	orders.Get("/", anyRole, orderHandler.List)
	orders.Get("/:id", anyRole, orderHandler.GetByID)
	orders.Get("/:id/pdf", anyRole, orderHandler.DownloadPDF)
	orders.Post("/", buyer, orderHandler.Create)
	orders.Post("/:id/send", buyer, orderHandler.Send)
	orders.Post("/:id/receive", buyer, orderHandler.Receive)
	orders.Post("/:id/cancel", buyer, orderHandler.Cancel)
}
