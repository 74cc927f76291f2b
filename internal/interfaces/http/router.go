package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mercadito-app/mercadito-api/internal/application/analytics"
	"github.com/mercadito-app/mercadito-api/internal/application/auth"
	"github.com/mercadito-app/mercadito-api/internal/application/inventory"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/infrastructure/cache"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	StockUC     *inventory.StockUseCase
	StoreUC     *usecase.StoreUseCase
	CouponUC    *usecase.CouponUseCase
	ListingUC   *usecase.ListingUseCase
	TicketUC    *usecase.TicketUseCase
	ContentUC   *usecase.ContentUseCase
	DashboardUC *analytics.DashboardUseCase
	Cache       cache.Client
	JWTSecret   string
	RateLimit   int           // peticiones por ventana en endpoints de auth
	RateWindow  time.Duration // tamaño de la ventana
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit por IP)
	authGroup := api.Group("/auth", RateLimiter(deps.Cache, deps.RateLimit, deps.RateWindow))
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Stores (lecturas públicas; creación protegida más abajo)
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores := api.Group("/stores")
	stores.Get("/", storeHandler.List)
	stores.Get("/:slug", storeHandler.GetBySlug)

	// Listings (lecturas públicas)
	listingHandler := NewListingHandler(deps.ListingUC)
	listings := api.Group("/listings")
	listings.Get("/", listingHandler.List)
	listings.Get("/:id", listingHandler.GetByID)

	// Contenido editorial (lecturas públicas)
	contentHandler := NewContentHandler(deps.ContentUC)
	content := api.Group("/content")
	content.Get("/posts", contentHandler.ListPosts)
	content.Get("/posts/:slug", contentHandler.GetPost)
	content.Get("/events", contentHandler.ListEvents)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stores (creación solo admin)
	protected.Post("/stores", RequireRole(entity.RoleAdmin), storeHandler.Create)

	// Products y stock (vendedores y admins de la tienda del token)
	products := protected.Group("/products", RequireRole(entity.RoleAdmin, entity.RoleVendedor))
	productHandler := NewProductHandler(deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/sale", productHandler.Sale)
	products.Post("/:id/restock", productHandler.Restock)
	products.Get("/:id/history", productHandler.History)

	// Coupons (gestión para vendedores/admins; apply para cualquier autenticado)
	couponHandler := NewCouponHandler(deps.CouponUC)
	protected.Post("/coupons/apply", couponHandler.Apply)
	coupons := protected.Group("/coupons", RequireRole(entity.RoleAdmin, entity.RoleVendedor))
	coupons.Post("/", couponHandler.Create)
	coupons.Get("/", couponHandler.List)
	coupons.Post("/:id/assign", couponHandler.Assign)
	coupons.Delete("/:id", couponHandler.Delete)

	// Listings (escrituras del dueño autenticado)
	protected.Post("/listings", listingHandler.Create)
	protected.Put("/listings/:id", listingHandler.Update)
	protected.Post("/listings/:id/sold", listingHandler.MarkSold)
	protected.Delete("/listings/:id", listingHandler.Delete)

	// Tickets (protegido)
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Post("/:id/replies", ticketHandler.Reply)
	tickets.Post("/:id/close", ticketHandler.Close)

	// Contenido editorial (escrituras solo admin)
	adminContent := protected.Group("/content", RequireRole(entity.RoleAdmin))
	adminContent.Post("/posts", contentHandler.CreatePost)
	adminContent.Put("/posts/:slug", contentHandler.UpdatePost)
	adminContent.Delete("/posts/:slug", contentHandler.DeletePost)
	adminContent.Post("/events", contentHandler.CreateEvent)
	adminContent.Delete("/events/:id", contentHandler.DeleteEvent)

	// Dashboard (vendedores y admins)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireRole(entity.RoleAdmin, entity.RoleVendedor), dashboardHandler.Summary)
}
