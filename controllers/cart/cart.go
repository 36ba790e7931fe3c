package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/catalog"
	"github.com/electrohub/storefront-api/store"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func sessionStore(c *gin.Context, reg *store.Registry) (*store.Store, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return reg.Session(sessionID), true
}

// GET /user/cart
func GetCart(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, reg)
		if !ok {
			return
		}
		state := s.State()
		c.JSON(http.StatusOK, gin.H{
			"items": state.Cart,
		})
	}
}

// POST /user/cart
//
// Adds one unit of the product: a new line with quantity 1, or +1 on
// the existing line for the same product.
func AddCartItem(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, reg)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found := catalog.ByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		state := s.Apply(store.AddToCart{Product: product})
		c.JSON(http.StatusOK, gin.H{"items": state.Cart})
	}
}

// PUT /user/cart
//
// Sets the quantity of an existing line, clamped to a minimum of 1.
// Unknown product ids are a no-op, not an error.
func UpdateCartItem(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, reg)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		state := s.Apply(store.UpdateQuantity{ProductID: input.ProductID, Quantity: input.Quantity})
		c.JSON(http.StatusOK, gin.H{"items": state.Cart})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, reg)
		if !ok {
			return
		}

		state := s.Apply(store.RemoveFromCart{ProductID: c.Param("product_id")})
		c.JSON(http.StatusOK, gin.H{"items": state.Cart})
	}
}

// DELETE /user/cart
func ClearCart(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, reg)
		if !ok {
			return
		}

		s.Apply(store.ClearCart{})
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
