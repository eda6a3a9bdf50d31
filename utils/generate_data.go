package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/opavlenko/finance-manager/internal/budget"
	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/models"
)

// Демо-дані для локальної розробки. Всі згенеровані користувачі мають
// пароль demo1234.

const demoPassword = "demo1234"

var demoExpenseCategories = []string{"Продукти", "Транспорт", "Розваги", "Комунальні", "Здоров'я"}
var demoIncomeCategories = []string{"Зарплата", "Фриланс", "Подарунки"}

func GenerateDemoUsers(pool *pgxpool.Pool, numUsers int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("помилка хешування пароля: %w", err)
	}

	users := make([]models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", faker.Username(), i),
			Email:    faker.Email(),
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if err := database.CreateUser(pool, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func GenerateDemoAccounts(pool *pgxpool.Pool, users []models.User) error {
	currencies := []string{"UAH", "USD", "EUR"}
	for _, user := range users {
		for i := 0; i < 1+rand.Intn(2); i++ {
			account := models.Account{
				UserID:   user.ID,
				Name:     faker.Word(),
				Balance:  decimal.NewFromInt(int64(rand.Intn(100000))).Div(decimal.NewFromInt(100)),
				Currency: currencies[rand.Intn(len(currencies))],
				IsActive: true,
			}
			if err := database.CreateAccount(pool, &account); err != nil {
				return err
			}
		}
	}
	return nil
}

func GenerateDemoCategories(pool *pgxpool.Pool, users []models.User) (map[int][]models.Category, error) {
	byUser := make(map[int][]models.Category)
	for _, user := range users {
		for _, name := range demoExpenseCategories {
			c := models.Category{UserID: user.ID, Name: name, Type: models.CategoryTypeExpense}
			if err := database.CreateCategory(pool, &c); err != nil {
				return nil, err
			}
			byUser[user.ID] = append(byUser[user.ID], c)
		}
		for _, name := range demoIncomeCategories {
			c := models.Category{UserID: user.ID, Name: name, Type: models.CategoryTypeIncome}
			if err := database.CreateCategory(pool, &c); err != nil {
				return nil, err
			}
			byUser[user.ID] = append(byUser[user.ID], c)
		}
	}
	return byUser, nil
}

func GenerateDemoTransactions(pool *pgxpool.Pool, categories map[int][]models.Category, perUser int) error {
	for userID, userCategories := range categories {
		for i := 0; i < perUser; i++ {
			category := userCategories[rand.Intn(len(userCategories))]
			amount := decimal.NewFromInt(int64(1 + rand.Intn(500000))).Div(decimal.NewFromInt(100))
			transaction := models.Transaction{
				UserID:      userID,
				CategoryID:  &category.ID,
				Amount:      amount,
				Description: faker.Sentence(),
				Type:        category.Type,
				Date:        time.Now().AddDate(0, 0, -rand.Intn(90)),
			}
			if err := database.CreateTransaction(pool, &transaction); err != nil {
				return err
			}
		}
	}
	return nil
}

func GenerateDemoBudgets(pool *pgxpool.Pool, categories map[int][]models.Category) error {
	for userID, userCategories := range categories {
		for _, category := range userCategories {
			if category.Type != models.CategoryTypeExpense || rand.Intn(2) == 0 {
				continue
			}
			startDate := time.Now().AddDate(0, 0, -rand.Intn(15))
			endDate, err := budget.DeriveEndDate(startDate, models.PeriodMonth)
			if err != nil {
				return err
			}
			b := models.Budget{
				UserID:     userID,
				CategoryID: category.ID,
				Amount:     decimal.NewFromInt(int64(100 + rand.Intn(5000))),
				Period:     models.PeriodMonth,
				StartDate:  startDate,
				EndDate:    endDate,
			}
			if err := database.CreateBudget(pool, &b); err != nil {
				return err
			}
		}
	}
	return nil
}

// GenerateDemoData наповнює базу демо-користувачами з рахунками,
// категоріями, транзакціями та бюджетами.
func GenerateDemoData(pool *pgxpool.Pool, numUsers, transactionsPerUser int) error {
	users, err := GenerateDemoUsers(pool, numUsers)
	if err != nil {
		return err
	}
	if err := GenerateDemoAccounts(pool, users); err != nil {
		return err
	}
	categories, err := GenerateDemoCategories(pool, users)
	if err != nil {
		return err
	}
	if err := GenerateDemoTransactions(pool, categories, transactionsPerUser); err != nil {
		return err
	}
	if err := GenerateDemoBudgets(pool, categories); err != nil {
		return err
	}
	log.Printf("згенеровано демо-даних: користувачів %d", len(users))
	return nil
}
