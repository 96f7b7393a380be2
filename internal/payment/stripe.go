package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeClient talks to the Stripe API. It is constructed once in the
// composition root and injected wherever a processor is needed; nothing
// in this package touches global SDK state.
type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{api: client.New(secretKey, nil)}
}

// CreateIntent creates a payment intent for the given amount in minor
// currency units. A single attempt, no retry.
func (s *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, wrapStripeErr(err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

// CreateSetupIntent creates a SetupIntent used to save a card.
func (s *StripeClient) CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error) {
	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	si, err := s.api.SetupIntents.New(params)
	if err != nil {
		return nil, wrapStripeErr(err)
	}

	return &SetupIntent{ID: si.ID, ClientSecret: si.ClientSecret}, nil
}

// CreateCustomer creates the Stripe customer record for a user.
func (s *StripeClient) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("userID", userID)

	cus, err := s.api.Customers.New(params)
	if err != nil {
		return "", wrapStripeErr(err)
	}

	return cus.ID, nil
}

// ListPaymentMethods returns all sofort and card payment sources
// attached to a customer.
func (s *StripeClient) ListPaymentMethods(ctx context.Context, customerID string) ([]MethodGroup, error) {
	sofort, err := s.listByType(ctx, customerID, "sofort")
	if err != nil {
		return nil, err
	}

	cards, err := s.listByType(ctx, customerID, "card")
	if err != nil {
		return nil, err
	}

	return []MethodGroup{
		{Type: "sofort", Data: sofort},
		{Type: "cards", Data: cards},
	}, nil
}

func (s *StripeClient) listByType(ctx context.Context, customerID, methodType string) ([]Method, error) {
	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(methodType),
	}
	params.Context = ctx

	methods := []Method{}

	iter := s.api.PaymentMethods.List(params)
	for iter.Next() {
		pm := iter.PaymentMethod()
		m := Method{
			ID:   pm.ID,
			Type: string(pm.Type),
		}
		if pm.Card != nil {
			m.Brand = string(pm.Card.Brand)
			m.Last4 = pm.Card.Last4
			m.ExpMonth = pm.Card.ExpMonth
			m.ExpYear = pm.Card.ExpYear
		}
		methods = append(methods, m)
	}
	if err := iter.Err(); err != nil {
		return nil, wrapStripeErr(err)
	}

	return methods, nil
}

func wrapStripeErr(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return &ProcessorError{
			Code:    string(sErr.Code),
			Message: sErr.Msg,
			err:     err,
		}
	}
	return &ProcessorError{Message: err.Error(), err: err}
}
