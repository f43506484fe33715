package router

import (
	"net/http"

	"github.com/Rajeshpandey9807/radhira-pos-backend/config"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/controller"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LookupControllers groups the six master-data controllers so the
// router constructor stays readable.
type LookupControllers struct {
	BusinessTypes     *controller.LookupController
	IndustryTypes     *controller.LookupController
	RegistrationTypes *controller.LookupController
	States            *controller.LookupController
	Categories        *controller.LookupController
	Roles             *controller.RoleController
}

type Router struct {
	authController      *controller.AuthController
	lookups             LookupControllers
	userController      *controller.UserController
	productController   *controller.ProductController
	partyController     *controller.PartyController
	profileController   *controller.BusinessProfileController
	saleController      *controller.SaleController
	dashboardController *controller.DashboardController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	lookups LookupControllers,
	userController *controller.UserController,
	productController *controller.ProductController,
	partyController *controller.PartyController,
	profileController *controller.BusinessProfileController,
	saleController *controller.SaleController,
	dashboardController *controller.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		lookups:             lookups,
		userController:      userController,
		productController:   productController,
		partyController:     partyController,
		profileController:   profileController,
		saleController:      saleController,
		dashboardController: dashboardController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "RADHIRA POS API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		// Everything below requires a session.
		secured := v1.Group("")
		secured.Use(r.authMiddleware.Authenticate())

		mountLookup(secured.Group("/business-types"), r.lookups.BusinessTypes)
		mountLookup(secured.Group("/industry-types"), r.lookups.IndustryTypes)
		mountLookup(secured.Group("/registration-types"), r.lookups.RegistrationTypes)
		mountLookup(secured.Group("/states"), r.lookups.States)
		mountLookup(secured.Group("/categories"), r.lookups.Categories)

		roles := secured.Group("/roles")
		{
			mountLookup(roles, r.lookups.Roles.LookupController)
			roles.DELETE("/:id", r.authMiddleware.RequireRole("admin"), r.lookups.Roles.Delete)
		}

		users := secured.Group("/users")
		users.Use(r.authMiddleware.RequireRole("admin"))
		{
			users.GET("", r.userController.List)
			users.GET("/:id", r.userController.Get)
			users.POST("", r.userController.Create)
			users.PUT("/:id", r.userController.Update)
			users.PATCH("/:id/active", r.userController.SetActive)
		}

		products := secured.Group("/products")
		{
			products.GET("", r.productController.List)
			products.GET("/export", r.productController.Export)
			products.GET("/:id", r.productController.Get)
			products.POST("", r.productController.Create)
			products.PUT("/:id", r.productController.Update)
			products.PATCH("/:id/active", r.productController.SetActive)
		}

		parties := secured.Group("/parties")
		{
			parties.GET("", r.partyController.List)
			parties.GET("/:id", r.partyController.Get)
			parties.POST("", r.partyController.Create)
			parties.PUT("/:id", r.partyController.Update)
			parties.PATCH("/:id/active", r.partyController.SetActive)
		}

		profile := secured.Group("/business-profile")
		{
			profile.GET("", r.profileController.Get)
			profile.POST("", r.profileController.Save)
			profile.GET("/:id/logo", r.profileController.Logo)
			profile.GET("/:id/signature", r.profileController.Signature)
		}

		sales := secured.Group("/sales")
		{
			sales.GET("", r.saleController.List)
			sales.GET("/:id", r.saleController.Get)
			sales.POST("", r.saleController.Create)
		}

		dashboard := secured.Group("/dashboard")
		{
			dashboard.GET("", r.dashboardController.Snapshot)
			dashboard.GET("/export", r.dashboardController.Export)
		}
	}

	return router
}

// mountLookup wires the shared lookup handler set under one group.
func mountLookup(group *gin.RouterGroup, ctrl *controller.LookupController) {
	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Get)
	group.POST("", ctrl.Create)
	group.PUT("/:id", ctrl.Update)
	group.PATCH("/:id/active", ctrl.SetActive)
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
