// Package validation перевіряє поля форм перед відправленням.
// Кожен валідатор повертає повідомлення про помилку або порожній рядок,
// якщо значення коректне. Валідатори ніколи не панікують.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Обмеження полів, що відповідають схемі БД.
const (
	UsernameMax     = 50
	EmailMax        = 100
	AccountNameMax  = 50
	CategoryNameMax = 50
	PasswordMax     = 255
	DescriptionMax  = 5000

	// DECIMAL(15,2)
	AmountMaxStr = "9999999999999.99"
	AmountMinStr = "0.01"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9а-яА-ЯіІїЇєЄґҐ_-]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	colorRe    = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	currencyRe = regexp.MustCompile(`^[A-Z]+$`)
	amountRe   = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	amountMax = decimal.RequireFromString(AmountMaxStr)
)

// Validator перевіряє одне поле форми.
type Validator func(value string) string

func Username(username string) string {
	if strings.TrimSpace(username) == "" {
		return "Введіть ім'я користувача"
	}
	if len([]rune(username)) > UsernameMax {
		return fmt.Sprintf("Ім'я користувача не може перевищувати %d символів", UsernameMax)
	}
	if !usernameRe.MatchString(username) {
		return "Ім'я користувача може містити тільки літери, цифри, підкреслення та дефіс"
	}
	return ""
}

func Email(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Введіть email"
	}
	if len(email) > EmailMax {
		return fmt.Sprintf("Email не може перевищувати %d символів", EmailMax)
	}
	if !emailRe.MatchString(email) {
		return "Введіть коректний email"
	}
	return ""
}

func Password(password string, minLength int) string {
	if minLength <= 0 {
		minLength = 6
	}
	if strings.TrimSpace(password) == "" {
		return "Введіть пароль"
	}
	if len(password) < minLength {
		return fmt.Sprintf("Пароль повинен містити мінімум %d символів", minLength)
	}
	if len(password) > PasswordMax {
		return "Пароль занадто довгий"
	}
	return ""
}

func AccountName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Введіть назву рахунку"
	}
	if len([]rune(name)) > AccountNameMax {
		return fmt.Sprintf("Назва рахунку не може перевищувати %d символів", AccountNameMax)
	}
	return ""
}

func CategoryName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Введіть назву категорії"
	}
	if len([]rune(name)) > CategoryNameMax {
		return fmt.Sprintf("Назва категорії не може перевищувати %d символів", CategoryNameMax)
	}
	return ""
}

func Currency(currency string) string {
	if strings.TrimSpace(currency) == "" {
		return "Введіть код валюти"
	}
	if len(currency) != 3 {
		return "Код валюти повинен містити 3 символи (наприклад, UAH, USD, EUR)"
	}
	if !currencyRe.MatchString(currency) {
		return "Код валюти повинен містити тільки великі літери"
	}
	return ""
}

func Color(color string) string {
	if strings.TrimSpace(color) == "" {
		return "Виберіть колір"
	}
	if !colorRe.MatchString(color) {
		return "Неправильний формат кольору (використовуйте формат #RRGGBB)"
	}
	return ""
}

// Amount перевіряє грошову суму у десятковій семантиці з фіксованою точністю.
// Порівняння через decimal, без float: біля стелі у 13 цифр float64 вже
// втрачає точність.
func Amount(amount string) string {
	amount = strings.TrimSpace(amount)
	d, err := decimal.NewFromString(amount)
	if amount == "" || err != nil {
		return "Введіть суму"
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return "Сума повинна бути більше нуля"
	}
	if d.GreaterThan(amountMax) {
		return fmt.Sprintf("Сума не може перевищувати %s", AmountMaxStr)
	}
	if !amountRe.MatchString(amount) {
		return "Неправильний формат суми (максимум 2 знаки після коми)"
	}
	return ""
}

func Description(description string, required bool) string {
	if required && strings.TrimSpace(description) == "" {
		return "Введіть опис"
	}
	if len([]rune(description)) > DescriptionMax {
		return fmt.Sprintf("Опис не може перевищувати %d символів", DescriptionMax)
	}
	return ""
}

// Date перевіряє дату у форматі YYYY-MM-DD: не раніше 1900-01-01, не далі
// ніж через 10 років, і, якщо allowFuture=false, не пізніше сьогодні.
func Date(date string, allowFuture bool) string {
	if strings.TrimSpace(date) == "" {
		return "Виберіть дату"
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Неправильний формат дати"
	}
	now := time.Now()
	if !allowFuture && d.After(now) {
		return "Дата не може бути в майбутньому"
	}
	minDate := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	if d.Before(minDate) {
		return "Дата занадто давня"
	}
	if d.After(now.AddDate(10, 0, 0)) {
		return "Дата не може бути більше ніж через 10 років"
	}
	return ""
}

func DateRange(startDate, endDate string) string {
	if msg := Date(startDate, true); msg != "" {
		return msg
	}
	if msg := Date(endDate, true); msg != "" {
		return msg
	}
	start, _ := time.Parse("2006-01-02", startDate)
	end, _ := time.Parse("2006-01-02", endDate)
	if !end.After(start) {
		return "Кінцева дата повинна бути пізніше початкової"
	}
	return ""
}

func ID(id, fieldName string) string {
	if fieldName == "" {
		fieldName = "ID"
	}
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if strings.TrimSpace(id) == "" || err != nil {
		return fmt.Sprintf("Виберіть %s", fieldName)
	}
	if n <= 0 {
		return fmt.Sprintf("Неправильне значення %s", fieldName)
	}
	return ""
}

// Form застосовує валідатори до полів форми і повертає мапу помилок.
// У результаті присутні лише поля, що не пройшли перевірку.
func Form(formData map[string]string, validators map[string]Validator) map[string]string {
	errors := make(map[string]string)
	for field, validate := range validators {
		if msg := validate(formData[field]); msg != "" {
			errors[field] = msg
		}
	}
	return errors
}
