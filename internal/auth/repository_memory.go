package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) findByID(userID string) *User {
	for _, user := range r.users {
		if user.ID == userID {
			return user
		}
	}
	return nil
}

func (r *InMemoryUserRepository) GetStripeCustomer(
	_ context.Context,
	userID string,
) (string, string, error) {

	user := r.findByID(userID)
	if user == nil {
		return "", "", errors.New("user not found")
	}
	return user.Email, user.StripeCustomerID, nil
}

func (r *InMemoryUserRepository) SetStripeCustomer(
	_ context.Context,
	userID string,
	customerID string,
) error {

	user := r.findByID(userID)
	if user == nil {
		return errors.New("user not found")
	}
	user.StripeCustomerID = customerID
	return nil
}
