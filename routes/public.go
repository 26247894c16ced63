package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/cache"
	campaignControllers "github.com/sph0ngl3/Pazarm/controllers/campaign"
	contentControllers "github.com/sph0ngl3/Pazarm/controllers/content"
	marketControllers "github.com/sph0ngl3/Pazarm/controllers/market"
	productControllers "github.com/sph0ngl3/Pazarm/controllers/product"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the browse surface: no login required.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, rdb cache.Cache) {
	r.GET("/markets", marketControllers.GetMarkets(db))        // GET /markets?lat=&lon=
	r.GET("/markets/:id", marketControllers.GetMarketByID(db)) // GET /markets/:id

	r.GET("/categories", productControllers.GetCategories(db))    // GET /categories
	r.GET("/products", productControllers.GetProducts(db))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(db)) // GET /products/:id

	r.GET("/campaigns", campaignControllers.GetActiveCampaigns(db))  // GET /campaigns
	r.GET("/campaigns/:id", campaignControllers.GetCampaignByID(db)) // GET /campaigns/:id

	r.GET("/content/:key", contentControllers.GetContentBlock(db, rdb)) // GET /content/:key
}
