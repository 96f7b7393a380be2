package catalog

// Image is a product picture served from the CDN.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// ToppingOption is a selectable add-on within a topping group.
// Price is the surcharge in minor currency units.
type ToppingOption struct {
	ID    string `json:"ID"`
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Price int64  `json:"price"`
}

// Topping is a group of options with selection bounds, e.g.
// "Sauce" with qtyMin 1 and qtyMax 5.
type Topping struct {
	ID      string          `json:"ID"`
	Name    string          `json:"name"`
	QtyMin  int             `json:"qtyMin"`
	QtyMax  int             `json:"qtyMax"`
	Options []ToppingOption `json:"options"`
}

// Rating aggregates customer votes for a product.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Product is one menu item. Price and SalesPrice are minor currency
// units; SalesPrice, when set, is the effective charge price.
type Product struct {
	ID         string    `json:"ID"`
	SKU        string    `json:"sku,omitempty"`
	Name       string    `json:"name"`
	Desc       string    `json:"desc"`
	Price      int64     `json:"price"`
	SalesPrice *int64    `json:"salesPrice,omitempty"`
	Image      Image     `json:"image"`
	Categories []string  `json:"categories"`
	Toppings   []Topping `json:"toppings"`
	Allergens  []string  `json:"allergens,omitempty"`
	Rating     *Rating   `json:"rating,omitempty"`
}

// Grocery is a packaged item sold alongside the menu.
type Grocery struct {
	ID    string `json:"ID"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image Image  `json:"image"`
}
