package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/opavlenko/finance-manager/internal/config"
	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/utils"
)

func main() {
	numUsers := flag.Int("users", 10, "кількість демо-користувачів")
	perUser := flag.Int("transactions", 50, "кількість транзакцій на користувача")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf(".env не знайдено, використовуються змінні оточення")
	}
	cfg := config.Load()

	pool, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("помилка підключення до БД: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("помилка міграцій: %v", err)
	}

	if err := utils.GenerateDemoData(pool, *numUsers, *perUser); err != nil {
		log.Fatalf("помилка генерації демо-даних: %v", err)
	}
}
