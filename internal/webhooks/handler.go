package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// maxBodyBytes bounds webhook payload reads, Stripe events are small.
const maxBodyBytes = int64(65536)

// EventHandler processes one payment-intent event after the signature
// has been verified.
type EventHandler func(ctx context.Context, intent *stripe.PaymentIntent) error

// Handler verifies Stripe webhook signatures and dispatches events
// through a map keyed by the SDK's typed event constants. Event types
// without an entry are acknowledged and dropped, so Stripe does not
// keep retrying deliveries we deliberately ignore.
type Handler struct {
	secret   string
	handlers map[stripe.EventType]EventHandler
}

func NewHandler(secret string) *Handler {
	h := &Handler{
		secret:   secret,
		handlers: make(map[stripe.EventType]EventHandler),
	}

	h.On(stripe.EventTypePaymentIntentSucceeded, func(ctx context.Context, intent *stripe.PaymentIntent) error {
		log.Printf("payment intent %s succeeded (%d %s)", intent.ID, intent.Amount, intent.Currency)
		return nil
	})

	h.On(stripe.EventTypePaymentIntentPaymentFailed, func(ctx context.Context, intent *stripe.PaymentIntent) error {
		log.Printf("payment intent %s failed", intent.ID)
		return nil
	})

	return h
}

// On registers (or replaces) the handler for one event type.
func (h *Handler) On(eventType stripe.EventType, fn EventHandler) {
	h.handlers[eventType] = fn
}

// --------------------------------------------------
// POST /webhooks/stripe
// --------------------------------------------------
func (h *Handler) HandleStripe(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not read body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	handler, ok := h.handlers[event.Type]
	if !ok {
		// acknowledged but ignored
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
		return
	}

	if err := handler(c.Request.Context(), &intent); err != nil {
		log.Println("webhook handler:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
