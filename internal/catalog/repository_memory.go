package catalog

import (
	"context"
	"sort"

	"github.com/La-Mediterranee/Server/internal/core"
)

// InMemoryRepository backs tests and local development without Postgres.
type InMemoryRepository struct {
	products  map[string]*Product
	groceries map[string]*Grocery
	toppings  map[string]*Topping
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products:  make(map[string]*Product),
		groceries: make(map[string]*Grocery),
		toppings:  make(map[string]*Topping),
	}
}

func (r *InMemoryRepository) GetMenuItemPrices(
	_ context.Context,
	ids []string,
) (map[string]core.PriceRecord, error) {

	prices := make(map[string]core.PriceRecord, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			prices[id] = core.PriceRecord{Price: p.Price, SalesPrice: p.SalesPrice}
		}
	}
	return prices, nil
}

func (r *InMemoryRepository) GetGroceryPrices(
	_ context.Context,
	ids []string,
) (map[string]core.PriceRecord, error) {

	prices := make(map[string]core.PriceRecord, len(ids))
	for _, id := range ids {
		if g, ok := r.groceries[id]; ok {
			prices[id] = core.PriceRecord{Price: g.Price}
		}
	}
	return prices, nil
}

func (r *InMemoryRepository) GetToppingPrices(
	_ context.Context,
	ids []string,
) (map[string]core.ToppingPrices, error) {

	toppings := make(map[string]core.ToppingPrices, len(ids))
	for _, id := range ids {
		t, ok := r.toppings[id]
		if !ok {
			continue
		}
		prices := core.ToppingPrices{Options: make(map[string]int64, len(t.Options))}
		for _, option := range t.Options {
			prices.Options[option.ID] = option.Price
		}
		toppings[id] = prices
	}
	return toppings, nil
}

func (r *InMemoryRepository) ListProducts(_ context.Context) ([]Product, error) {
	products := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (r *InMemoryRepository) GetProduct(_ context.Context, id string) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *InMemoryRepository) ListCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range r.products {
		for _, c := range p.Categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *InMemoryRepository) ListProductsByCategory(
	ctx context.Context,
	category string,
) ([]Product, error) {

	all, _ := r.ListProducts(ctx)
	var products []Product
	for _, p := range all {
		for _, c := range p.Categories {
			if c == category {
				products = append(products, p)
				break
			}
		}
	}
	return products, nil
}

func (r *InMemoryRepository) InsertProduct(_ context.Context, p *Product) error {
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *InMemoryRepository) InsertGrocery(_ context.Context, g *Grocery) error {
	copied := *g
	r.groceries[g.ID] = &copied
	return nil
}

func (r *InMemoryRepository) InsertTopping(_ context.Context, t *Topping) error {
	copied := *t
	r.toppings[t.ID] = &copied
	return nil
}

func (r *InMemoryRepository) UpdateProductImage(_ context.Context, id, imageURL string) error {
	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Image.Src = imageURL
	return nil
}
