package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/catalog"
	"github.com/electrohub/storefront-api/models"
	"github.com/electrohub/storefront-api/store"
)

// POST /user/wishlist/:product_id
//
// Toggles the product in or out of the wishlist. Each call flips the
// membership exactly once.
func ToggleWishlist(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID := c.Param("product_id")
		if _, found := catalog.ByID(productID); !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		state := reg.Session(sessionID).Apply(store.ToggleWishlist{ProductID: productID})
		c.JSON(http.StatusOK, gin.H{"wishlist": state.Wishlist})
	}
}

// GET /user/wishlist
//
// Returns the wishlisted ids resolved to full products, preserving the
// order they were added in.
func GetWishlist(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		state := reg.Session(sessionID).State()

		products := []models.Product{}
		for _, id := range state.Wishlist {
			if p, found := catalog.ByID(id); found {
				products = append(products, p)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"ids":      state.Wishlist,
			"products": products,
		})
	}
}
