package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------------------------------------------------
// Register
// --------------------------------------------------
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required fields"})
		return
	}

	user, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// --------------------------------------------------
// Login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		return
	}

	token, err := GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// --------------------------------------------------
// Verify session token
// --------------------------------------------------
func (h *Handler) VerifySession(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}

	// token comes from the body or the Authorization header
	_ = c.ShouldBindJSON(&req)
	if req.Token == "" {
		header := c.GetHeader("Authorization")
		req.Token = strings.TrimPrefix(header, "Bearer ")
	}

	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing token"})
		return
	}

	userID, email, role, err := ValidateToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID": userID,
		"email":  email,
		"role":   role,
	})
}

// --------------------------------------------------
// Extend session (issues a fresh token)
// --------------------------------------------------
func (h *Handler) ExtendSession(c *gin.Context) {
	var req struct {
		ExpiresIn int64 `json:"expiresIn"` // seconds
	}
	_ = c.ShouldBindJSON(&req)

	ttl := DefaultSessionTTL
	if req.ExpiresIn > 0 {
		ttl = time.Duration(req.ExpiresIn) * time.Second
	}

	userID := c.GetString("userID")
	email := c.GetString("userEmail")
	role := c.GetString("userRole")

	token, err := GenerateTokenWithTTL(userID, email, role, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not extend session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int64(ttl / time.Second),
	})
}
