package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)

	// Wallet bootstrap: where the payment processor's customer ID for
	// a user is kept.
	GetStripeCustomer(ctx context.Context, userID string) (email, customerID string, err error)
	SetStripeCustomer(ctx context.Context, userID, customerID string) error
}
