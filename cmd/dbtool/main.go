package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"campus-courier-service/internal/adapters/repositories"
	"campus-courier-service/internal/config"
	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/platform/db"
)

// dbtool initializes the Postgres schema and optionally seeds demo
// orders for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPostgres(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/orders.json")
	if _, err := os.Stat(seedPath); err != nil {
		log.Printf("No seed file at %q, skipping seed.", seedPath)
		return
	}

	log.Println("Seeding database...")
	if err := seedOrders(pg, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

type orderSeed struct {
	OrderID          string   `json:"order_id"`
	CustomerName     string   `json:"customer_name"`
	PickupLocation   string   `json:"pickup_location"`
	DeliveryLocation string   `json:"delivery_location"`
	Items            []string `json:"items"`
	Priority         int      `json:"priority"`
}

// seedOrders inserts demo orders from a JSON file, all Pending.
func seedOrders(pg *sql.DB, seedPath string) error {
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("seed orders: read %q: %w", seedPath, err)
	}

	var seeds []orderSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("seed orders: parse json: %w", err)
	}

	repo := repositories.NewSQLOrderRepository(pg)
	ctx := context.Background()

	for i, seed := range seeds {
		if strings.TrimSpace(seed.OrderID) == "" {
			return fmt.Errorf("seed orders: item at index %d: order_id cannot be empty", i+1)
		}
		if len(seed.Items) == 0 {
			return fmt.Errorf("seed orders: %s: items cannot be empty", seed.OrderID)
		}

		order := domain.Order{
			OrderID:          seed.OrderID,
			CustomerName:     seed.CustomerName,
			PickupLocation:   seed.PickupLocation,
			DeliveryLocation: seed.DeliveryLocation,
			Items:            seed.Items,
			Priority:         seed.Priority,
			Status:           domain.StatusPending,
			CreatedAt:        time.Now().UTC(),
		}
		if err := repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}

	return nil
}
