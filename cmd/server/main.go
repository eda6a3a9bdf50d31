package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/opavlenko/finance-manager/internal/config"
	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/routes"
	"github.com/opavlenko/finance-manager/utils"
)

func main() {
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

	utils.ConfigureRatesAPI(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey)
	if err := utils.RefreshRates(); err != nil {
		log.Printf("початкове завантаження курсів не вдалося: %v", err)
	}

	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		if err := database.RenewExpiredBudgets(pool); err != nil {
			log.Printf("помилка переносу бюджетів: %v", err)
		}
	}); err != nil {
		log.Fatalf("помилка налаштування cron-задачі бюджетів: %v", err)
	}
	if _, err := c.AddFunc("@hourly", func() {
		if err := utils.RefreshRates(); err != nil {
			log.Printf("помилка оновлення курсів валют: %v", err)
		}
	}); err != nil {
		log.Fatalf("помилка налаштування cron-задачі курсів: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := routes.New(pool, cfg)
	log.Printf("сервер запущено на порту %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("помилка запуску сервера: %v", err)
	}
}
