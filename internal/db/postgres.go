package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	addStripeCustomerSQL := `
		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS stripe_customer_id VARCHAR(255) NULL
	`
	if _, err := db.Exec(ctx, addStripeCustomerSQL); err != nil {
		log.Println("Note: stripe_customer_id column may already exist")
	}

	// -------------------------------
	// PRODUCTS (MENU ITEMS)
	// -------------------------------
	// prices are minor currency units (cents)
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			sku VARCHAR(64),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price BIGINT NOT NULL,
			sales_price BIGINT NULL,
			image_src VARCHAR(500) NOT NULL DEFAULT '',
			image_alt VARCHAR(255) NOT NULL DEFAULT '',
			categories TEXT[] NOT NULL DEFAULT '{}',
			toppings JSONB NOT NULL DEFAULT '[]',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// GROCERIES
	// -------------------------------
	groceriesSQL := `
		CREATE TABLE IF NOT EXISTS groceries (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price BIGINT NOT NULL,
			image_src VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, groceriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// TOPPINGS
	// -------------------------------
	// options is a JSONB map keyed by option ID
	toppingsSQL := `
		CREATE TABLE IF NOT EXISTS toppings (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			qty_min INT NOT NULL DEFAULT 0,
			qty_max INT NOT NULL DEFAULT 1,
			options JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, toppingsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
