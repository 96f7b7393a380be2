package payment

import "fmt"

// Intent is the processor-owned charge intent, reduced to what the
// client needs. Created once per request, never mutated here;
// confirmation and capture happen on the processor's side.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// SetupIntent lets the client save a payment method for later use.
type SetupIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// Method is one saved payment source.
type Method struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Brand    string `json:"brand,omitempty"`
	Last4    string `json:"last4,omitempty"`
	ExpMonth int64  `json:"expMonth,omitempty"`
	ExpYear  int64  `json:"expYear,omitempty"`
}

// MethodGroup groups saved payment methods by type ("sofort", "cards").
type MethodGroup struct {
	Type string   `json:"type"`
	Data []Method `json:"data"`
}

// ProcessorError is a payment-processor rejection with the processor's
// machine-readable reason code. No retries are attempted; the caller
// surfaces it as a failed response.
type ProcessorError struct {
	Code    string
	Message string
	err     error
}

func (e *ProcessorError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment processor: %s (%s)", e.Message, e.Code)
	}
	return "payment processor: " + e.Message
}

func (e *ProcessorError) Unwrap() error { return e.err }
