package main

import (
	"context"
	"log"
	"os"

	"github.com/La-Mediterranee/Server/internal/auth"
	"github.com/La-Mediterranee/Server/internal/catalog"
	"github.com/La-Mediterranee/Server/internal/checkout"
	"github.com/La-Mediterranee/Server/internal/db"
	"github.com/La-Mediterranee/Server/internal/payment"
	"github.com/La-Mediterranee/Server/internal/router"
	"github.com/La-Mediterranee/Server/internal/storage"
	"github.com/La-Mediterranee/Server/internal/wallet"
	"github.com/La-Mediterranee/Server/internal/webhooks"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"STRIPE_SECRET",
		"STRIPE_WEBHOOK_SECRET",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── STRIPE ─────────────────────────
	stripeClient := payment.NewStripeClient(os.Getenv("STRIPE_SECRET"))

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo, r2Client)
	checkoutService := checkout.NewService(
		catalogRepo,
		stripeClient,
		checkout.Options{MultiplyQuantity: true},
	)
	walletService := wallet.NewService(userRepo, stripeClient)

	// ───────────────────────── HANDLERS ─────────────────────────
	deps := router.Deps{
		Auth:     auth.NewHandler(authService),
		Catalog:  catalog.NewHandler(catalogService),
		Checkout: checkout.NewHandler(checkoutService),
		Wallet:   wallet.NewHandler(walletService),
		Webhooks: webhooks.NewHandler(os.Getenv("STRIPE_WEBHOOK_SECRET")),
	}

	r := router.New(deps)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
