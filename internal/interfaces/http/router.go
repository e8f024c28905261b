package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kishanbeldas/pahana-edu/internal/application/auth"
	"github.com/kishanbeldas/pahana-edu/internal/application/billing"
	"github.com/kishanbeldas/pahana-edu/internal/application/inventory"
	"github.com/kishanbeldas/pahana-edu/internal/application/reports"
	"github.com/kishanbeldas/pahana-edu/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Composer   *billing.Composer
	BillUC     *billing.BillUseCase
	CustomerUC *billing.CustomerUseCase
	ItemUC     *inventory.ItemUseCase
	ReportUC   *reports.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Drafts: borradores de factura en memoria (protegido)
	drafts := protected.Group("/drafts")
	draftHandler := NewDraftHandler(deps.Composer)
	drafts.Post("/", draftHandler.Open)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Put("/:id", draftHandler.UpdateHeader)
	drafts.Delete("/:id", draftHandler.Discard)
	drafts.Post("/:id/lines", draftHandler.AddLine)
	drafts.Put("/:id/lines/:index", draftHandler.UpdateLine)
	drafts.Delete("/:id/lines/:index", draftHandler.RemoveLine)
	drafts.Post("/:id/submit", draftHandler.Submit)

	// Bills (protegido). Las rutas literales van antes que /:id para que
	// "number" y "customer" no se capturen como IDs.
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC)
	bills.Get("/", billHandler.List)
	bills.Post("/", billHandler.Create)
	bills.Get("/number/:billNumber", billHandler.GetByNumber)
	bills.Get("/customer/:customerId", billHandler.ListByCustomer)
	bills.Get("/:id/pdf", billHandler.DownloadPDF)
	bills.Get("/:id", billHandler.GetByID)
	bills.Put("/:id", billHandler.Update)
	bills.Delete("/:id", adminOnly, billHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/categories", itemHandler.Categories)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
}
