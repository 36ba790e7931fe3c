package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/auth"
	productControllers "github.com/electrohub/storefront-api/controllers/product"
	"github.com/electrohub/storefront-api/middleware"
)

// SetupPublicRoutes registers the unauthenticated surface: catalog
// browsing, search suggestions and the auth endpoints.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productControllers.GetProducts())           // GET /products?search=&category=&max_price=&sort=
	r.GET("/products/suggest", productControllers.SuggestProducts()) // GET /products/suggest?q=
	r.GET("/products/:id", productControllers.GetProductByID())    // GET /products/:id

	// ──────────────── Auth ────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession())                       // guest session + token
		authGroup.POST("/login", optionalSession, auth.Login(d.Registry))      // mock credential sign-in
		authGroup.POST("/logout", middleware.ValidateToken, auth.Logout(d.Registry))
	}
}

// optionalSession resolves a session token when one is supplied but
// lets anonymous sign-ins through so login can mint a fresh session.
func optionalSession(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.Next()
		return
	}
	middleware.ValidateToken(c)
}
