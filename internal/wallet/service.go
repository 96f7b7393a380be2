package wallet

import (
	"context"

	"github.com/La-Mediterranee/Server/internal/payment"
)

// UserStore is the slice of the user repository the wallet needs:
// where a user's processor customer ID is kept.
type UserStore interface {
	GetStripeCustomer(ctx context.Context, userID string) (email, customerID string, err error)
	SetStripeCustomer(ctx context.Context, userID, customerID string) error
}

// Processor covers the customer-and-wallet side of the payment processor.
type Processor interface {
	CreateCustomer(ctx context.Context, email, userID string) (string, error)
	CreateSetupIntent(ctx context.Context, customerID string) (*payment.SetupIntent, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]payment.MethodGroup, error)
}

type Service struct {
	users     UserStore
	processor Processor
}

func NewService(users UserStore, processor Processor) *Service {
	return &Service{users: users, processor: processor}
}

// CreateSetupIntent returns a SetupIntent the client uses to save a
// card for later payments.
func (s *Service) CreateSetupIntent(ctx context.Context, userID string) (*payment.SetupIntent, error) {
	customerID, err := s.getOrCreateCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.processor.CreateSetupIntent(ctx, customerID)
}

// ListPaymentMethods returns all payment sources saved for the user.
func (s *Service) ListPaymentMethods(ctx context.Context, userID string) ([]payment.MethodGroup, error) {
	customerID, err := s.getOrCreateCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.processor.ListPaymentMethods(ctx, customerID)
}

// getOrCreateCustomer returns the user's processor customer ID,
// creating the customer record on first use and persisting the ID on
// the user row.
func (s *Service) getOrCreateCustomer(ctx context.Context, userID string) (string, error) {
	email, customerID, err := s.users.GetStripeCustomer(ctx, userID)
	if err != nil {
		return "", err
	}

	if customerID != "" {
		return customerID, nil
	}

	customerID, err = s.processor.CreateCustomer(ctx, email, userID)
	if err != nil {
		return "", err
	}

	if err := s.users.SetStripeCustomer(ctx, userID, customerID); err != nil {
		return "", err
	}

	return customerID, nil
}
