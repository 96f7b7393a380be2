package auth

// Roles.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// User is the domain entity. StripeCustomerID is set lazily the first
// time the user touches their wallet.
type User struct {
	ID               string
	Name             string
	Email            string
	Password         string
	Role             string
	StripeCustomerID string
}
