package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List saved payment methods
// --------------------------------------------------
func (h *Handler) GetWallet(c *gin.Context) {
	userID := c.GetString("userID")

	wallet, err := h.service.ListPaymentMethods(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// --------------------------------------------------
// Save a payment method (SetupIntent)
// --------------------------------------------------
func (h *Handler) CreateSetupIntent(c *gin.Context) {
	userID := c.GetString("userID")

	intent, err := h.service.CreateSetupIntent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
