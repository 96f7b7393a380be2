package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/La-Mediterranee/Server/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// BATCHED PRICE READS (ONE QUERY PER CATEGORY)
// --------------------------------------------------

func (r *PostgresRepository) GetMenuItemPrices(
	ctx context.Context,
	ids []string,
) (map[string]core.PriceRecord, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, price, sales_price
		FROM products
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]core.PriceRecord, len(ids))

	for rows.Next() {
		var (
			id         string
			price      int64
			salesPrice *int64
		)
		if err := rows.Scan(&id, &price, &salesPrice); err != nil {
			return nil, err
		}
		prices[id] = core.PriceRecord{Price: price, SalesPrice: salesPrice}
	}

	return prices, rows.Err()
}

func (r *PostgresRepository) GetGroceryPrices(
	ctx context.Context,
	ids []string,
) (map[string]core.PriceRecord, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, price
		FROM groceries
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]core.PriceRecord, len(ids))

	for rows.Next() {
		var (
			id    string
			price int64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = core.PriceRecord{Price: price}
	}

	return prices, rows.Err()
}

func (r *PostgresRepository) GetToppingPrices(
	ctx context.Context,
	ids []string,
) (map[string]core.ToppingPrices, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, options
		FROM toppings
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	toppings := make(map[string]core.ToppingPrices, len(ids))

	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}

		// options is a JSONB map keyed by option ID
		var options map[string]ToppingOption
		if err := json.Unmarshal(doc, &options); err != nil {
			return nil, err
		}

		prices := core.ToppingPrices{Options: make(map[string]int64, len(options))}
		for optionID, option := range options {
			prices.Options[optionID] = option.Price
		}

		toppings[id] = prices
	}

	return toppings, rows.Err()
}

// --------------------------------------------------
// STOREFRONT READS
// --------------------------------------------------

const productColumns = `
	id, sku, name, description,
	price, sales_price,
	image_src, image_alt,
	categories, toppings, allergens
`

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT unnest(categories)
		FROM products
		ORDER BY 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) ListProductsByCategory(
	ctx context.Context,
	category string,
) ([]Product, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE $1 = ANY(categories)
		ORDER BY name
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// --------------------------------------------------
// ADMIN & SEEDING
// --------------------------------------------------

func (r *PostgresRepository) InsertProduct(ctx context.Context, p *Product) error {
	toppings, err := json.Marshal(p.Toppings)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO products (
			id, sku, name, description,
			price, sales_price,
			image_src, image_alt,
			categories, toppings, allergens
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`,
		p.ID, p.SKU, p.Name, p.Desc,
		p.Price, p.SalesPrice,
		p.Image.Src, p.Image.Alt,
		p.Categories, toppings, p.Allergens,
	)

	return err
}

func (r *PostgresRepository) InsertGrocery(ctx context.Context, g *Grocery) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO groceries (id, name, price, image_src)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, g.ID, g.Name, g.Price, g.Image.Src)

	return err
}

func (r *PostgresRepository) InsertTopping(ctx context.Context, t *Topping) error {
	// stored keyed by option ID so price lookups stay a map access
	options := make(map[string]ToppingOption, len(t.Options))
	for _, option := range t.Options {
		options[option.ID] = option
	}

	doc, err := json.Marshal(options)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO toppings (id, name, qty_min, qty_max, options)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, t.ID, t.Name, t.QtyMin, t.QtyMax, doc)

	return err
}

func (r *PostgresRepository) UpdateProductImage(ctx context.Context, id, imageURL string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE products
		SET image_src = $1
		WHERE id = $2
	`, imageURL, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// --------------------------------------------------
// SCAN HELPERS
// --------------------------------------------------

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p        Product
		toppings []byte
	)

	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Desc,
		&p.Price, &p.SalesPrice,
		&p.Image.Src, &p.Image.Alt,
		&p.Categories, &toppings, &p.Allergens,
	)
	if err != nil {
		return nil, err
	}

	if len(toppings) > 0 {
		if err := json.Unmarshal(toppings, &p.Toppings); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	var products []Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}
