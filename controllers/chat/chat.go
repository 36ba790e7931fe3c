package chatControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/advisor"
	"github.com/electrohub/storefront-api/catalog"
)

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// POST /chat
//
// Relays the shopper's message to the advisory assistant. The advisor
// never returns an error: connectivity trouble surfaces as its canned
// apology, so this endpoint cannot fail past input validation.
func Chat(client *advisor.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ChatInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		reply := client.Advise(c.Request.Context(), input.Message, catalog.All())
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
