package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/catalog"
	"github.com/electrohub/storefront-api/search"
)

// GET /products
//
// Without a search param this returns the full catalog; with one it
// runs the matching engine. Optional filters: category, max_price,
// sort (relevance|low|high).
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		products := catalog.All()

		searchText := c.Query("search")
		if searchText == "" {
			c.JSON(http.StatusOK, products)
			return
		}

		query := search.Query{
			Text:     searchText,
			Category: c.DefaultQuery("category", search.CategoryAll),
			Sort:     search.Sort(c.DefaultQuery("sort", string(search.SortRelevance))),
		}

		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query.MaxPrice = maxPrice
		}

		c.JSON(http.StatusOK, search.Run(products, query))
	}
}

// GET /products/suggest?q=...
//
// The navbar's lightweight suggestion path: two-character minimum,
// capped at five results.
func SuggestProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, search.Suggest(catalog.All(), c.Query("q")))
	}
}

// GET /products/:id
func GetProductByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := catalog.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
