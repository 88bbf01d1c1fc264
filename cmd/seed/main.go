package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/product-market-api/config"
	"github.com/oksasatya/product-market-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET first_name=EXCLUDED.first_name
		RETURNING id
	`, "Demo", "Seller", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	products := []struct {
		name, desc, image string
		price             float64
	}{
		{"Mechanical Keyboard", "Hot-swappable 75% board", "keyboard.jpg", 89.99},
		{"USB-C Dock", "Dual display, 100W passthrough", "dock.jpg", 59.50},
		{"Desk Mat", "900x400mm stitched edges", "mat.jpg", 19.00},
	}
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (product_name, description, price, image, user_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT DO NOTHING
		`, p.name, p.desc, p.price, p.image, id); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d products for user %d\n", len(products), id)
}
