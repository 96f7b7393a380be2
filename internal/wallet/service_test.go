package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/La-Mediterranee/Server/internal/payment"
)

type stubUserStore struct {
	email      string
	customerID string
	setCalls   int
}

func (s *stubUserStore) GetStripeCustomer(_ context.Context, userID string) (string, string, error) {
	if userID == "" {
		return "", "", errors.New("user not found")
	}
	return s.email, s.customerID, nil
}

func (s *stubUserStore) SetStripeCustomer(_ context.Context, _ string, customerID string) error {
	s.setCalls++
	s.customerID = customerID
	return nil
}

type stubProcessor struct {
	createCalls int
}

func (s *stubProcessor) CreateCustomer(_ context.Context, email, userID string) (string, error) {
	s.createCalls++
	return "cus_test", nil
}

func (s *stubProcessor) CreateSetupIntent(_ context.Context, customerID string) (*payment.SetupIntent, error) {
	return &payment.SetupIntent{ID: "seti_test", ClientSecret: "seti_secret_" + customerID}, nil
}

func (s *stubProcessor) ListPaymentMethods(_ context.Context, customerID string) ([]payment.MethodGroup, error) {
	return []payment.MethodGroup{
		{Type: "sofort", Data: []payment.Method{}},
		{Type: "cards", Data: []payment.Method{{ID: "pm_1", Type: "card", Last4: "4242"}}},
	}, nil
}

func TestCustomerCreatedOnFirstWalletUse(t *testing.T) {
	users := &stubUserStore{email: "test@example.com"}
	processor := &stubProcessor{}
	service := NewService(users, processor)

	if _, err := service.CreateSetupIntent(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if processor.createCalls != 1 {
		t.Fatalf("expected one customer creation, got %d", processor.createCalls)
	}
	if users.customerID != "cus_test" {
		t.Fatalf("expected customer ID to be persisted, got %q", users.customerID)
	}
}

func TestExistingCustomerReused(t *testing.T) {
	users := &stubUserStore{email: "test@example.com", customerID: "cus_existing"}
	processor := &stubProcessor{}
	service := NewService(users, processor)

	wallet, err := service.ListPaymentMethods(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if processor.createCalls != 0 {
		t.Fatalf("expected no customer creation for existing customer")
	}
	if users.setCalls != 0 {
		t.Fatalf("expected no customer ID update for existing customer")
	}

	if len(wallet) != 2 || wallet[0].Type != "sofort" || wallet[1].Type != "cards" {
		t.Fatalf("unexpected wallet shape: %+v", wallet)
	}
}
