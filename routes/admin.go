package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/cache"
	campaignControllers "github.com/sph0ngl3/Pazarm/controllers/campaign"
	cartControllers "github.com/sph0ngl3/Pazarm/controllers/cart"
	contentControllers "github.com/sph0ngl3/Pazarm/controllers/content"
	orderControllers "github.com/sph0ngl3/Pazarm/controllers/order"
	productControllers "github.com/sph0ngl3/Pazarm/controllers/product"
	"github.com/sph0ngl3/Pazarm/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, rdb cache.Cache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))                      // GET /admin/orders
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))               // GET /admin/orders/export
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db)) // PUT /admin/orders/:orderID/status

		// ──────────────── Carts ────────────────
		adminGroup.GET("/carts/:profile_id", cartControllers.GetProfileCart(db)) // GET /admin/carts/:profile_id

		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))               // POST /admin/products
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))            // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))         // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db)) // GET /admin/products/export

		// ──────────────── Campaigns ────────────────
		adminGroup.POST("/campaigns", campaignControllers.CreateCampaign(db))       // POST /admin/campaigns
		adminGroup.DELETE("/campaigns/:id", campaignControllers.DeleteCampaign(db)) // DELETE /admin/campaigns/:id

		// ──────────────── Content ────────────────
		adminGroup.PUT("/content", contentControllers.UpsertContentBlock(db, rdb)) // PUT /admin/content
	}
}
