package main

import (
	"context"
	"log"
	"os"

	"github.com/La-Mediterranee/Server/internal/catalog"
	"github.com/La-Mediterranee/Server/internal/db"

	"github.com/jaswdr/faker"
	"github.com/joho/godotenv"
)

// seed fills the catalog with a demo menu so the storefront and the
// checkout flow can be exercised without real data.
func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	repo := catalog.NewPostgresRepository(pgDB)
	ctx := context.Background()
	fake := faker.New()

	toppings := []catalog.Topping{
		makeTopping(&fake, "Sauce", 1, []option{
			{"Tzatziki", 0},
			{"Hummus", 50},
			{"Scharf", 0},
		}),
		makeTopping(&fake, "Beilagen", 1, []option{
			{"Pommes", 250},
			{"Reis", 200},
			{"Salat", 300},
		}),
		makeTopping(&fake, "Extra Beilagen", 0, []option{
			{"Mais", 50},
			{"Feta", 100},
			{"Oliven", 80},
		}),
	}

	for i := range toppings {
		if err := repo.InsertTopping(ctx, &toppings[i]); err != nil {
			log.Fatal("insert topping:", err)
		}
	}

	dishes := []string{
		"Gyros Teller", "Falafel Wrap", "Hummus Teller", "Moussaka",
		"Halloumi Burger", "Lammspieß", "Dorade vom Grill",
		"Souvlaki", "Bifteki", "Sesamring",
	}

	for i, name := range dishes {
		product := catalog.Product{
			ID:         fake.UUID().V4(),
			Name:       name,
			Desc:       fake.Lorem().Sentence(10),
			Price:      int64(fake.IntBetween(450, 1800)),
			Categories: []string{pick(&fake, "grill", "vegetarisch", "wraps")},
			Image: catalog.Image{
				Src: fake.Internet().URL(),
				Alt: name,
			},
		}

		// every second dish is on sale and configurable with toppings
		if i%2 == 0 {
			sale := product.Price - int64(fake.IntBetween(50, 200))
			product.SalesPrice = &sale
			product.Toppings = toppings
		}

		if err := repo.InsertProduct(ctx, &product); err != nil {
			log.Fatal("insert product:", err)
		}
	}

	groceries := []string{"Olivenöl 500ml", "Weinblätter", "Schafskäse", "Oliven 250g"}
	for _, name := range groceries {
		grocery := catalog.Grocery{
			ID:    fake.UUID().V4(),
			Name:  name,
			Price: int64(fake.IntBetween(150, 900)),
		}
		if err := repo.InsertGrocery(ctx, &grocery); err != nil {
			log.Fatal("insert grocery:", err)
		}
	}

	log.Println("✅ Catalog seeded")
}

type option struct {
	name  string
	price int64
}

func makeTopping(fake *faker.Faker, name string, qtyMin int, options []option) catalog.Topping {
	t := catalog.Topping{
		ID:     fake.UUID().V4(),
		Name:   name,
		QtyMin: qtyMin,
		QtyMax: 5,
	}
	for _, o := range options {
		t.Options = append(t.Options, catalog.ToppingOption{
			ID:    fake.UUID().V4(),
			Name:  o.name,
			Price: o.price,
		})
	}
	return t
}

func pick(fake *faker.Faker, values ...string) string {
	return values[fake.IntBetween(0, len(values)-1)]
}
