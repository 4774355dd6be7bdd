package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Административный сброс хранилища: удаляет все вопросы и журнал знаний.
// Используется для возврата демо-стенда в исходное состояние; посев
// базового набора выполнит API при следующем старте.
func main() {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DATABASE_HOST", "localhost"),
		envOr("DATABASE_PORT", "5432"),
		envOr("DATABASE_USER", "postgres"),
		os.Getenv("DATABASE_PASSWORD"),
		envOr("DATABASE_DBNAME", "interviewprep_db"),
		envOr("DATABASE_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Truncating questions and user_knowledge...")
	if _, err := db.Exec("TRUNCATE TABLE questions, user_knowledge RESTART IDENTITY"); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	fmt.Println("Success! Store is empty. Restart the API to reseed the baseline questions.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
