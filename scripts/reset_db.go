package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Dev utility: wipes business data (policies, customers, leads) while
// keeping admin users and the partner company list.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE all policies, customers and leads!")
	fmt.Println("Admin users and insurance companies are kept.")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "insure_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("Resetting database...")

	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v\n", err)
	}
	defer tx.Rollback(ctx)

	// Policies first so the customer/company foreign keys do not block
	tables := []string{
		"policies",
		"customers",
		"leads",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			log.Fatalf("Failed to truncate %s: %v\n", table, err)
		}
		fmt.Printf("  cleared %s\n", table)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Done.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
