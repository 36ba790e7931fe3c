package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/auth"
	cartControllers "github.com/electrohub/storefront-api/controllers/cart"
	wishlistControllers "github.com/electrohub/storefront-api/controllers/wishlist"
	"github.com/electrohub/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/me", auth.Me(d.Registry)) // GET /user/me

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(d.Registry))                   // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(d.Registry))              // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartItem(d.Registry))            // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Registry)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(d.Registry))              // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(d.Registry))               // GET /user/wishlist
			wishlistGroup.POST("/:product_id", wishlistControllers.ToggleWishlist(d.Registry)) // POST /user/wishlist/:product_id
		}
	}
}
