package checkout

// CategoryType discriminates the two kinds of cart line items.
type CategoryType string

const (
	CategoryMenuItem CategoryType = "menuitem"
	CategoryGrocery  CategoryType = "grocery"
)

func (c CategoryType) Valid() bool {
	return c == CategoryMenuItem || c == CategoryGrocery
}

// SelectedTopping references one topping group and the option(s)
// the customer picked within it.
type SelectedTopping struct {
	ToppingID       string   `json:"toppingID"`
	ToppingOptionID []string `json:"toppingOptionID"`
}

// CartItem is one requested purchase line. Name is display-only and
// never trusted for pricing; the authoritative price is always looked
// up by ID in the catalog.
type CartItem struct {
	ID               string            `json:"ID"`
	Name             string            `json:"name"`
	CategoryType     CategoryType      `json:"categoryType"`
	Quantity         int               `json:"quantity"`
	SelectedToppings []SelectedTopping `json:"selectedToppings,omitempty"`
}
