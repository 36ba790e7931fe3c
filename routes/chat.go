package routes

import (
	"github.com/gin-gonic/gin"

	chatControllers "github.com/electrohub/storefront-api/controllers/chat"
	"github.com/electrohub/storefront-api/middleware"
)

// SetupChatRoutes registers the advisory assistant endpoint. It sits
// in front of a metered upstream, so it is rate-limited per session.
func SetupChatRoutes(r *gin.Engine, d Deps) {
	limiter := middleware.NewRateLimiter(1, 3)

	r.POST("/chat", middleware.ValidateToken, limiter.Handler(), chatControllers.Chat(d.Advisor))
}
