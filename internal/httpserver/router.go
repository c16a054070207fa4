package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"zapstore/internal/domain"
	"zapstore/internal/service/catalog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Store is the state container as seen by the handlers.
type Store interface {
	Products() []domain.Product
	Product(id string) (domain.Product, error)
	Categories() []domain.Category
	Settings() domain.Settings
	User() *domain.User
	Cart() []domain.CartItem
	Orders() []domain.Order
	AdminCredentials() domain.AdminCredentials

	SaveProduct(ctx context.Context, p domain.Product) domain.Product
	DeleteProduct(ctx context.Context, id string)
	SaveCategory(ctx context.Context, c domain.Category) domain.Category
	DeleteCategory(ctx context.Context, id string) *domain.Notice

	AddToCart(productID string) (*domain.Notice, error)
	UpdateCartQuantity(productID string, delta int) (*domain.Notice, error)
	RemoveFromCart(productID string)
	ClearCart()

	PlaceOrder(ctx context.Context, method domain.PaymentMethod) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error)

	SaveSettings(ctx context.Context, s domain.Settings)
	UpdateAdminCredentials(ctx context.Context, creds domain.AdminCredentials)
}

type CatalogService interface {
	Browse(f catalog.Filter) []domain.Product
	CategoryUsage() []catalog.CategoryUsage
	Dashboard() catalog.Dashboard
	OrdersForClient(clientID string) []domain.Order
	Installments() int
}

type AuthService interface {
	LoginWait(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	ResetCredentials(ctx context.Context)
}

// Deps groups the services the router needs.
type Deps struct {
	Store   Store
	Catalog CatalogService
	Auth    AuthService
}

type handler struct {
	logger *log.Logger
	store  Store
	cat    CatalogService
	auth   AuthService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, ready ReadyFunc, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Store == nil || deps.Catalog == nil || deps.Auth == nil {
		return nil, errors.New("httpserver: store, catalog and auth are required")
	}
	h := &handler{logger: logger, store: deps.Store, cat: deps.Catalog, auth: deps.Auth}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(ready))

	router.GET("/settings", h.getSettings)
	router.GET("/catalog", h.browse)
	router.GET("/products/:id", h.getProduct)
	router.GET("/categories", h.listCategories)

	router.GET("/cart", h.getCart)
	router.POST("/cart", h.addToCart)
	router.PATCH("/cart/:productId", h.updateCartQuantity)
	router.DELETE("/cart/:productId", h.removeFromCart)
	router.DELETE("/cart", h.clearCart)
	router.POST("/checkout", h.checkout)

	router.POST("/auth/login", h.login)
	router.POST("/auth/logout", h.logout)
	router.POST("/auth/reset", h.resetCredentials)
	router.GET("/session", h.session)

	me := router.Group("/me", requireRole(h.store, domain.RoleClient))
	me.GET("/orders", h.myOrders)

	admin := router.Group("/admin", requireRole(h.store, domain.RoleAdmin))
	admin.GET("/dashboard", h.dashboard)
	admin.GET("/products", h.adminListProducts)
	admin.POST("/products", h.adminCreateProduct)
	admin.PUT("/products/:id", h.adminUpdateProduct)
	admin.DELETE("/products/:id", h.adminDeleteProduct)
	admin.GET("/categories", h.adminListCategories)
	admin.POST("/categories", h.adminCreateCategory)
	admin.PUT("/categories/:id", h.adminUpdateCategory)
	admin.DELETE("/categories/:id", h.adminDeleteCategory)
	admin.PUT("/settings", h.adminSaveSettings)
	admin.GET("/credentials", h.adminGetCredentials)
	admin.PUT("/credentials", h.adminUpdateCredentials)
	admin.GET("/orders", h.adminListOrders)
	admin.PATCH("/orders/:id/status", h.adminUpdateOrderStatus)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

type ctxKey string

const userCtxKey ctxKey = "sessionUser"

// requireRole admits requests only while the session user has role.
func requireRole(store Store, role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := store.User()
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "login required"})
			return
		}
		if u.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		ctx := context.WithValue(c.Request.Context(), userCtxKey, u)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func sessionUser(c *gin.Context) *domain.User {
	u, _ := c.Request.Context().Value(userCtxKey).(*domain.User)
	return u
}
