package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sph0ngl3/Pazarm/controllers/cart"
	loyaltyControllers "github.com/sph0ngl3/Pazarm/controllers/loyalty"
	profileControllers "github.com/sph0ngl3/Pazarm/controllers/profile"
	subscriptionControllers "github.com/sph0ngl3/Pazarm/controllers/subscription"
	"github.com/sph0ngl3/Pazarm/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", profileControllers.GetProfile(db))    // GET /user/
		userGroup.PUT("/", profileControllers.UpdateProfile(db)) // PUT /user/

		// ──────────────── Addresses ────────────────
		userGroup.GET("/addresses", profileControllers.GetAddresses(db))         // GET /user/addresses
		userGroup.POST("/addresses", profileControllers.AddAddress(db))          // POST /user/addresses
		userGroup.DELETE("/addresses/:id", profileControllers.DeleteAddress(db)) // DELETE /user/addresses/:id

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))                                         // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                                    // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItemQuantity(db))                  // PUT /user/cart/:item_id
			cartGroup.PUT("/:item_id/subscription", cartControllers.ToggleCartItemSubscription(db)) // PUT /user/cart/:item_id/subscription
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))                       // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearCart(db))                                    // DELETE /user/cart
		}

		// ──────────────── Loyalty (M Puan) ────────────────
		userGroup.GET("/loyalty", loyaltyControllers.GetBalance(db))                   // GET /user/loyalty
		userGroup.GET("/loyalty/transactions", loyaltyControllers.GetTransactions(db)) // GET /user/loyalty/transactions

		// ──────────────── Subscriptions ────────────────
		userGroup.GET("/subscriptions", subscriptionControllers.GetSubscriptions(db))              // GET /user/subscriptions
		userGroup.PUT("/subscriptions/:id/pause", subscriptionControllers.PauseSubscription(db))   // PUT /user/subscriptions/:id/pause
		userGroup.PUT("/subscriptions/:id/resume", subscriptionControllers.ResumeSubscription(db)) // PUT /user/subscriptions/:id/resume
		userGroup.PUT("/subscriptions/:id/cancel", subscriptionControllers.CancelSubscription(db)) // PUT /user/subscriptions/:id/cancel
	}
}
