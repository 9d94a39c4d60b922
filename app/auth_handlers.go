package app

import (
	"log"
	"net/http"

	"github.com/Twosense-Dev/BizBot/auth"

	"github.com/gin-gonic/gin"
)

// sessionVerifier signs login tokens; set by NewRouter.
var sessionVerifier *auth.Verifier

// Health is a public health check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials against the demo accounts and issues a session
// token carrying the premium entitlement flag.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user := auth.Authorize(req.Email, req.Password)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if sessionVerifier == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sessions not configured"})
		return
	}
	token, err := sessionVerifier.IssueToken(*user)
	if err != nil {
		log.Printf("session token issue failed email=%s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the session snapshot for the authenticated user.
func Me(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        claims.Subject,
		"name":      claims.Name,
		"email":     claims.Email,
		"isPremium": claims.IsPremium,
	})
}

// Logout acknowledges session teardown. Tokens are stateless; the client
// discards its copy and the session is gone.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
