package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/electrohub/storefront-api/controllers/admin"
	productControllers "github.com/electrohub/storefront-api/controllers/product"
	"github.com/electrohub/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// admin API key or an admin-role session token.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetStats(d.Registry))

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetAllOrders(d.Registry))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(d.Registry))
		}

		// ─────────── Catalog ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productControllers.GetProducts())
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel())
		}
	}
}
