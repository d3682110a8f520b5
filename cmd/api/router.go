package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/middleware"
	"storefront-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.FrontendURL),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCouponRoutes(v1, c)
		setupCheckoutRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupCronRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// COUPON ROUTES
// ========================================
func setupCouponRoutes(v1 *gin.RouterGroup, c *container.Container) {
	coupons := v1.Group("/coupons")
	{
		coupons.POST("/validate", middleware.OptionalAuth(c.JWTManager), c.CouponHandler.ValidateCoupon)
	}
}

// ========================================
// CHECKOUT ROUTES
// ========================================
func setupCheckoutRoutes(v1 *gin.RouterGroup, c *container.Container) {
	checkout := v1.Group("/checkout")
	{
		checkout.POST("/capture", c.CheckoutHandler.Capture)
		checkout.GET("/recover/:id", c.CheckoutHandler.Recover)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("/trending", c.ProductHandler.Trending)
		products.GET("/:id", c.ProductHandler.GetDetail)
		products.GET("/:id/reviews", c.ReviewHandler.ListReviews)
		products.POST("/:id/reviews", middleware.OptionalAuth(c.JWTManager), c.ReviewHandler.CreateReview)
	}
}

// ========================================
// CRON ROUTES (external scheduler)
// ========================================
func setupCronRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cron := v1.Group("/cron", middleware.CronKey(c.Config.Cron.Secret))
	{
		cron.GET("/abandoned-recovery", c.CheckoutHandler.RecoverySweep)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin",
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)
	{
		admin.POST("/coupons", c.CouponAdminHandler.CreateCoupon)
		admin.GET("/coupons", c.CouponAdminHandler.ListCoupons)
		admin.PATCH("/coupons/:id/status", c.CouponAdminHandler.UpdateStatus)

		admin.GET("/abandoned-checkouts", c.CheckoutHandler.ListAdmin)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		services := appCtx.HealthCheck(ctx)

		status := "healthy"
		statusCode := http.StatusOK
		for name, s := range services {
			if s == "ok" {
				continue
			}
			// Redis down → degraded, API vẫn phục vụ được
			if name == "redis" {
				status = "degraded"
				continue
			}
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}

		body := gin.H{
			"status":    status,
			"version":   appCtx.Config.App.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services":  services,
		}
		if appCtx.DB != nil {
			if stats, err := appCtx.DB.Stats(); err == nil {
				body["postgres_pool"] = stats
			}
		}
		c.JSON(statusCode, body)
	}
}
