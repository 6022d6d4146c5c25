// Package router wires the HTTP routes of the public API.
package router

import (
	"showcase/internal/delivery/api/middleware"
	"showcase/internal/delivery/api/router/handler"
	"showcase/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ProductHandler     *handler.ProductHandler
	ServiceHandler     *handler.ServiceHandler
	PartnerHandler     *handler.PartnerHandler
	CompanyInfoHandler *handler.CompanyInfoHandler
	ContentHandler     *handler.ContentHandler
	ContactHandler     *handler.ContactHandler
	MediaHandler       *handler.MediaHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	productHandler     *handler.ProductHandler
	serviceHandler     *handler.ServiceHandler
	partnerHandler     *handler.PartnerHandler
	companyInfoHandler *handler.CompanyInfoHandler
	contentHandler     *handler.ContentHandler
	contactHandler     *handler.ContactHandler
	mediaHandler       *handler.MediaHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		productHandler:     params.ProductHandler,
		serviceHandler:     params.ServiceHandler,
		partnerHandler:     params.PartnerHandler,
		companyInfoHandler: params.CompanyInfoHandler,
		contentHandler:     params.ContentHandler,
		contactHandler:     params.ContactHandler,
		mediaHandler:       params.MediaHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/media/*", r.mediaHandler.Serve)

	api := e.Group("/api")
	admin := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	users := api.Group("/users")
	{
		users.POST("/login", r.userHandler.Login)
		users.GET("/profile", r.userHandler.Profile, r.authMiddleware.Authenticate)
		users.POST("", r.userHandler.Create, admin...)
	}

	products := api.Group("/products")
	{
		products.GET("/categories", r.productHandler.Categories)
		products.GET("/category/:category", r.productHandler.ByCategory)
		r.registerItemRoutes(products, r.productHandler.ItemHandler, admin)
	}

	r.registerItemRoutes(api.Group("/services"), r.serviceHandler.ItemHandler, admin)

	partners := api.Group("/partners")
	{
		partners.GET("", r.partnerHandler.List)
		partners.GET("/:id", r.partnerHandler.Get)
		partners.POST("", r.partnerHandler.Create, admin...)
		partners.PUT("/:id", r.partnerHandler.Update, admin...)
		partners.DELETE("/:id", r.partnerHandler.Delete, admin...)
	}

	companyInfo := api.Group("/company-info")
	{
		companyInfo.GET("", r.companyInfoHandler.Get)
		companyInfo.GET("/qrcode", r.companyInfoHandler.QRCode)
		companyInfo.PUT("", r.companyInfoHandler.Update, admin...)
		companyInfo.PUT("/logo", r.companyInfoHandler.UpdateLogo, admin...)
	}

	content := api.Group("/content")
	{
		content.POST("/init", r.contentHandler.Initialize, admin...)
		content.GET("/:type", r.contentHandler.Get)
		content.PUT("/:type", r.contentHandler.Update, admin...)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", r.contactHandler.Submit)
		contact.GET("", r.contactHandler.List, admin...)
		contact.GET("/:id", r.contactHandler.Get, admin...)
		contact.PUT("/:id/read", r.contactHandler.MarkRead, admin...)
		contact.DELETE("/:id", r.contactHandler.Delete, admin...)
	}
}

// registerItemRoutes mounts the routes shared by products and services.
func (r *router) registerItemRoutes(g *echo.Group, h *handler.ItemHandler, admin []echo.MiddlewareFunc) {
	g.GET("", h.List)
	g.GET("/top", h.Top)
	g.GET("/with-catalogs", h.WithCatalogs)
	g.GET("/:id", h.Get)
	g.GET("/:id/catalog", h.GetCatalog)
	g.GET("/:id/catalog/download", h.DownloadCatalog)

	g.POST("", h.Create, admin...)
	g.PUT("/:id", h.Update, admin...)
	g.DELETE("/:id", h.Delete, admin...)
	g.POST("/:id/images", h.AddImages, admin...)
	g.DELETE("/:id/images/:imageId", h.RemoveImage, admin...)
	g.PUT("/:id/images/:imageId/main", h.SetMainImage, admin...)
	g.POST("/:id/catalog", h.UploadCatalog, admin...)
	g.DELETE("/:id/catalog", h.DeleteCatalog, admin...)
}
