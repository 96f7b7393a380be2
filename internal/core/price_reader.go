package core

import "context"

// PriceRecord is the authoritative price data for one catalog record.
// SalesPrice, when set, overrides Price. Both are minor currency units.
type PriceRecord struct {
	Price      int64
	SalesPrice *int64
}

// ToppingPrices maps option IDs of one topping group to their surcharge.
type ToppingPrices struct {
	Options map[string]int64
}

// PriceReader is the read-only catalog contract the checkout flow depends on.
// Each call is one batched read: absent IDs are simply missing from the
// returned map, so callers can tell "no record" apart from a zero price.
type PriceReader interface {
	GetGroceryPrices(ctx context.Context, ids []string) (map[string]PriceRecord, error)
	GetMenuItemPrices(ctx context.Context, ids []string) (map[string]PriceRecord, error)
	GetToppingPrices(ctx context.Context, ids []string) (map[string]ToppingPrices, error)
}
