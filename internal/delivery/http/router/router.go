// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/middleware"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/router/handler"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	"github.com/thenextech/shoploc-back-end/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AccountHandler    *handler.AccountHandler
	CategoryHandler   *handler.CategoryHandler
	ProductHandler    *handler.ProductHandler
	OrderHandler      *handler.OrderHandler
	OrderLineHandler  *handler.OrderLineHandler
	StorefrontHandler *handler.StorefrontHandler
	HealthHandler     *handler.HealthHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics
}

type router struct {
	auth       *handler.AuthHandler
	account    *handler.AccountHandler
	category   *handler.CategoryHandler
	product    *handler.ProductHandler
	order      *handler.OrderHandler
	orderLine  *handler.OrderLineHandler
	storefront *handler.StorefrontHandler
	health     *handler.HealthHandler
	session    *middleware.SessionMiddleware
	metrics    *metrics.Metrics
}

func NewRouter(params RouterParams) *router {
	return &router{
		auth:       params.AuthHandler,
		account:    params.AccountHandler,
		category:   params.CategoryHandler,
		product:    params.ProductHandler,
		order:      params.OrderHandler,
		orderLine:  params.OrderLineHandler,
		storefront: params.StorefrontHandler,
		health:     params.HealthHandler,
		session:    params.SessionMiddleware,
		metrics:    params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.Check)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	groups := make(map[entity.Role]*echo.Group, len(entity.Roles()))
	for _, role := range entity.Roles() {
		group := e.Group("/"+role.String(), r.session.Load)
		r.registerAccountRoutes(group, role)
		groups[role] = group
	}

	r.registerMerchantRoutes(groups[entity.RoleMerchant])
	r.registerClientRoutes(groups[entity.RoleClient])
}

// registerAccountRoutes wires login, verification and profile routes of one role.
func (r *router) registerAccountRoutes(g *echo.Group, role entity.Role) {
	requireRole := r.session.RequireRole(role)

	g.GET("/login", r.auth.LoginPage(role))
	g.POST("/login", r.auth.Login(role))
	g.POST("/verify", r.auth.Verify(role))
	g.GET("/dashboard", r.auth.Dashboard, requireRole)
	g.GET("/logout", r.auth.Logout(role))

	g.GET("/register", r.account.RegisterPage(role))
	g.POST("/register", r.account.Register(role))
	g.PUT("/profile", r.account.UpdateProfile, requireRole)
	g.DELETE("/account", r.account.DeleteAccount(role), requireRole)
}

// registerMerchantRoutes wires the catalog. Reads are public, mutations need a merchant session.
func (r *router) registerMerchantRoutes(g *echo.Group) {
	requireMerchant := r.session.RequireRole(entity.RoleMerchant)

	category := g.Group("/category")
	{
		category.POST("/create", r.category.Create, requireMerchant)
		category.GET("", r.category.GetByID)
		category.GET("/merchant", r.category.ListByMerchant)
		category.GET("/all", r.category.ListAll)
		category.PUT("", r.category.Update, requireMerchant)
		category.DELETE("", r.category.Delete, requireMerchant)
	}

	product := g.Group("/product")
	{
		product.POST("/create", r.product.Create, requireMerchant)
		product.GET("", r.product.GetByID)
		product.GET("/merchant", r.product.ListByMerchant)
		product.GET("/category", r.product.ListByCategory)
		product.GET("/all", r.product.ListAll)
		product.PUT("", r.product.Update, requireMerchant)
		product.DELETE("", r.product.Delete, requireMerchant)
	}

	g.GET("/orderline/merchant", r.orderLine.ListByMerchant)
	g.GET("/qr", r.storefront.QRCode)
}

// registerClientRoutes wires orders and order lines. Reads are public, mutations need a client session.
func (r *router) registerClientRoutes(g *echo.Group) {
	requireClient := r.session.RequireRole(entity.RoleClient)

	order := g.Group("/order")
	{
		order.POST("/create", r.order.Create, requireClient)
		order.GET("", r.order.GetByID)
		order.GET("/user", r.order.ListByUser)
		order.GET("/all", r.order.ListAll)
		order.PUT("", r.order.UpdateStatus, requireClient)
		order.DELETE("", r.order.Delete, requireClient)
	}

	orderLine := g.Group("/orderline")
	{
		orderLine.POST("/create", r.orderLine.Create, requireClient)
		orderLine.GET("", r.orderLine.GetByID)
		orderLine.GET("/order", r.orderLine.ListByOrder)
		orderLine.GET("/all", r.orderLine.ListAll)
		orderLine.PUT("", r.orderLine.Update, requireClient)
		orderLine.DELETE("", r.orderLine.Delete, requireClient)
	}
}
