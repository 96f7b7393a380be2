package catalog

import (
	"context"
	"errors"

	"github.com/La-Mediterranee/Server/internal/core"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines all database operations for the catalog.
// It includes the batched price reads the checkout flow depends on.
type Repository interface {
	core.PriceReader

	// -------------------------------
	// Storefront reads
	// -------------------------------

	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]Product, error)

	// -------------------------------
	// Admin & seeding
	// -------------------------------

	InsertProduct(ctx context.Context, p *Product) error
	InsertGrocery(ctx context.Context, g *Grocery) error
	InsertTopping(ctx context.Context, t *Topping) error
	UpdateProductImage(ctx context.Context, id, imageURL string) error
}
