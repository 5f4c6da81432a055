package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	StoreUC     *usecase.StoreUseCase
	InventoryUC *usecase.InventoryUseCase
	CartUC      *usecase.CartUseCase
	OrderUC     *usecase.OrderUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth por OTP (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/otp/request", authHandler.RequestOTP)
	authGroup.Post("/otp/verify", authHandler.VerifyOTP)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := api.Group("/categories")
	categories.Get("/main", catalogHandler.ListMain)
	categories.Get("/:id/subcategories", catalogHandler.ListSubcategories)
	categories.Get("/:id/products", catalogHandler.ListProducts)
	products := api.Group("/products")
	products.Get("/search", catalogHandler.Search) // antes de /:id
	products.Get("/:id", catalogHandler.GetProduct)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// KYC y tienda
	storeHandler := NewStoreHandler(deps.StoreUC)
	kyc := protected.Group("/kyc")
	kyc.Post("/", storeHandler.SubmitKYC)
	kyc.Get("/status", storeHandler.GetKYCStatus)
	stores := protected.Group("/stores")
	stores.Post("/", storeHandler.CreateStore)
	stores.Get("/mine", storeHandler.GetMyStore)

	// Revisión KYC (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/kyc/pending", storeHandler.ListPendingKYC)
	admin.Post("/kyc/:id/review", storeHandler.ReviewKYC)

	// Inventario (solo owners)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory", RequireRole(entity.RoleOwner, entity.RoleAdmin))
	inv.Put("/", inventoryHandler.Upsert)
	inv.Get("/", inventoryHandler.List)

	// Carrito
	cartHandler := NewCartHandler(deps.CartUC)
	cart := protected.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Put("/", cartHandler.Save)
	cart.Delete("/", cartHandler.Clear)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Place)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Pedidos recibidos por mi tienda (solo owners)
	stores.Get("/mine/orders", RequireRole(entity.RoleOwner), orderHandler.ListForStore)
}
