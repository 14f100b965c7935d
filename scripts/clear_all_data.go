//go:build ignore

// Dev utility: wipes every row from the todo tables. Run directly:
//
//	go run scripts/clear_all_data.go
package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", ""),
		env("DB_NAME", "todo"),
		env("DB_PORT", "5432"),
		env("DB_SSL_MODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Tasks first so the list_id references are gone before their lists.
	for _, table := range []string{"tasks", "lists", "users"} {
		result := db.Exec("DELETE FROM " + table)
		if result.Error != nil {
			log.Fatalf("Failed to clear %s: %v", table, result.Error)
		}
		fmt.Printf("Deleted %d rows from %s\n", result.RowsAffected, table)
	}

	fmt.Println("Done! All todo data cleared.")
}
