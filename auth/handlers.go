package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electrohub/storefront-api/store"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/session
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := NewSessionID()

		token, err := IssueToken(sessionID, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
		})
	}
}

// POST /auth/login
//
// Accepts an existing session token so a guest cart survives sign-in;
// otherwise a fresh session is created.
func Login(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := SignIn(input.Email, input.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Use admin@electrohub.com / admin123 or any email with 6+ char password."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
			return
		}

		sessionID := c.GetString("session_id")
		if sessionID == "" {
			sessionID = NewSessionID()
		}

		reg.Session(sessionID).Apply(store.SetUser{User: &user})

		token, err := IssueToken(sessionID, &user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Login successful",
			"session_id": sessionID,
			"token":      token,
			"user":       user,
		})
	}
}

// POST /auth/logout
func Logout(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		reg.Session(sessionID).Apply(store.Logout{})

		token, err := IssueToken(sessionID, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged out",
			"token":   token,
		})
	}
}

// GET /user/me
func Me(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		state := reg.Session(sessionID).State()
		if state.User == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": state.User})
	}
}
