package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/electrohub/storefront-api/checkout"
	"github.com/electrohub/storefront-api/models"
	"github.com/electrohub/storefront-api/payment"
	"github.com/electrohub/storefront-api/store"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	Address       models.Address `json:"address" binding:"required"`
	PaymentMethod string         `json:"payment_method" binding:"required"`
}

// -------- Handlers --------

// POST /user/orders
//
// Runs the whole checkout: snapshot the cart, charge the mock gateway,
// build the order, then apply PlaceOrder which records it and removes
// the snapshotted quantities from the cart in one transition.
func PlaceOrderHandler(reg *store.Registry, gateway *payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := reg.Session(sessionID)
		state := s.State()
		if len(state.Cart) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		taken := func(id string) bool {
			for _, o := range state.Orders {
				if o.ID == id {
					return true
				}
			}
			return false
		}

		order, err := checkout.Build(state.Cart, req.Address, req.PaymentMethod, taken)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		receipt, err := gateway.Charge(c.Request.Context(), order.Total, req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment processing was interrupted"})
			return
		}
		order.PaymentRef = receipt.Ref

		s.Apply(store.PlaceOrder{Order: order})
		broadcastNewOrder(order)

		log.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("order placed")
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		state := reg.Session(sessionID).State()
		c.JSON(http.StatusOK, gin.H{"orders": state.Orders})
	}
}

// GET /user/orders/:order_id
//
// The invoice view: reads a stored order back by id.
func GetOrderHandler(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID := c.Param("order_id")
		state := reg.Session(sessionID).State()
		for _, o := range state.Orders {
			if o.ID == orderID {
				c.JSON(http.StatusOK, o)
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	}
}
