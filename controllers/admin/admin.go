package adminController

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/catalog"
	"github.com/electrohub/storefront-api/models"
	"github.com/electrohub/storefront-api/store"
)

const lowStockThreshold = 20

// GET /admin/stats
//
// Dashboard aggregates across every live session: revenue, order
// count, catalog size and low-stock products.
func GetStats(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var revenue float64
		var orderCount int
		customers := map[string]bool{}

		for _, s := range reg.All() {
			state := s.State()
			for _, o := range state.Orders {
				revenue += o.Total
				orderCount++
				customers[o.CustomerEmail] = true
			}
		}

		lowStock := []models.Product{}
		for _, p := range catalog.All() {
			if p.Stock < lowStockThreshold {
				lowStock = append(lowStock, p)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"total_revenue": revenue,
			"total_orders":  orderCount,
			"customers":     len(customers),
			"products":      len(catalog.All()),
			"low_stock":     lowStock,
		})
	}
}

// GET /admin/orders
//
// All orders across all sessions, newest first.
func GetAllOrders(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := collectOrders(reg)
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func collectOrders(reg *store.Registry) []models.Order {
	orders := []models.Order{}
	for _, s := range reg.All() {
		orders = append(orders, s.State().Orders...)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders
}
