package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/La-Mediterranee/Server/internal/payment"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create payment intent for a cart
// --------------------------------------------------
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var items []CartItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	intent, err := h.service.CreatePaymentIntent(c.Request.Context(), items)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"amount":       intent.Amount,
	})
}

// statusForError maps pricing and processor failures onto the HTTP
// boundary: the client either gets a clientSecret or an error, never a
// placeholder amount.
func statusForError(err error) (int, string) {
	var malformed *MalformedItemError
	var missing *MissingRecordError
	var processor *payment.ProcessorError

	switch {
	case errors.As(err, &malformed):
		return http.StatusBadRequest, malformed.Error()
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity, missing.Error()
	case errors.Is(err, ErrInvalidAmount):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &processor):
		return http.StatusBadGateway, processor.Error()
	default:
		return http.StatusInternalServerError, "could not price the cart"
	}
}
