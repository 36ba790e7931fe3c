package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/advisor"
	"github.com/electrohub/storefront-api/payment"
	"github.com/electrohub/storefront-api/store"
)

// Deps carries everything the route groups need wired in.
type Deps struct {
	Registry *store.Registry
	Advisor  *advisor.Client
	Gateway  *payment.Gateway
}

// SetupRoutes is the single entry-point that wires up the public,
// user, order, chat and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public routes (catalog + auth, no middleware)
	SetupPublicRoutes(r, d)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// 3️⃣ Order routes
	SetupOrderRoutes(r, d)

	// 4️⃣ Chat assistant routes (rate-limited)
	SetupChatRoutes(r, d)

	// 5️⃣ Admin routes (API-key or admin-role protected)
	SetupAdminRoutes(r, d)
}
