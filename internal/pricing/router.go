package pricing

import (
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPricingRoutes(router *gin.RouterGroup, controller Controller) {
	// Admin routes - pricing management is admin-only
	adminPricing := router.Group("/admin/events/:eventId/pricing")
	adminPricing.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminPricing.GET("", controller.GetEventPricing)                    // GET /api/v1/admin/events/:eventId/pricing
		adminPricing.PUT("", controller.SaveEventPricing)                   // PUT /api/v1/admin/events/:eventId/pricing
		adminPricing.POST("/synthesize", controller.SynthesizeEventPricing) // POST /api/v1/admin/events/:eventId/pricing/synthesize
	}
}
