// seed inserts a test user and a batch of tasks into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"taskboard/internal/auth"
	"taskboard/internal/infrastructure/postgres"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password-1"
)

type taskSpec struct {
	title       string
	description string
	completed   bool
}

var tasks = []taskSpec{
	{"Buy groceries", "Milk, eggs, bread", true},
	{"Write weekly report", "Summarize sprint outcomes for the team", false},
	{"Book dentist appointment", "", false},
	{"Renew passport", "Expires in 3 months", false},
	{"Fix leaking tap", "Kitchen sink, left handle", true},
	{"Plan holiday", "Compare trains vs flights", false},
	{"Review pull requests", "Two open since Monday", false},
	{"Pay electricity bill", "", true},
	{"Clean out garage", "Donate old bike", false},
	{"Prepare demo", "Walk through the new onboarding flow", false},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := auth.NewPasswordHasher().Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash seed password: %v", err)
	}

	// Upsert test user; keep the known password on re-runs.
	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id`,
		seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	// Re-runs start from a clean slate so counts stay predictable.
	if _, err := pool.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID); err != nil {
		log.Fatalf("clear tasks: %v", err)
	}

	for _, spec := range tasks {
		_, err := pool.Exec(ctx, `
			INSERT INTO tasks (user_id, title, description, completed)
			VALUES ($1, $2, $3, $4)`,
			userID, spec.title, spec.description, spec.completed,
		)
		if err != nil {
			log.Fatalf("insert task %q: %v", spec.title, err)
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:          %s\n", seedEmail)
	fmt.Printf("  Password:      %s\n", seedPassword)
	fmt.Printf("  User ID:       %s\n", userID)
	fmt.Printf("  Tasks created: %d\n", len(tasks))
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — list tasks:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s 'http://localhost:8080/api/tasks?page=1&limit=5' -H \"Authorization: Bearer $JWT\"")
}
