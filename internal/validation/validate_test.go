package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/opavlenko/finance-manager/internal/validation"
)

func TestUsername(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		wantFail bool
	}{
		{"порожнє значення", "", true},
		{"лише пробіли", "   ", true},
		{"латиниця з цифрами", "ivan_2024", false},
		{"кирилиця", "Богдан-Ґудзь", false},
		{"задовге", strings.Repeat("a", 51), true},
		{"недопустимі символи", "ivan petrov", true},
		{"спецсимволи", "ivan@home", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := validation.Username(tc.value)
			if (msg != "") != tc.wantFail {
				t.Errorf("Username(%q) = %q, очікували помилку: %v", tc.value, msg, tc.wantFail)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	if msg := validation.Email("a@b.com"); msg != "" {
		t.Errorf("коректний email відхилено: %q", msg)
	}
	for _, bad := range []string{"", "a b@c.com", "abc", "a@b", strings.Repeat("a", 95) + "@b.com"} {
		if validation.Email(bad) == "" {
			t.Errorf("Email(%q) мав повернути помилку", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if validation.Password("12345", 6) == "" {
		t.Error("короткий пароль пройшов перевірку")
	}
	if msg := validation.Password("123456", 6); msg != "" {
		t.Errorf("пароль мінімальної довжини відхилено: %q", msg)
	}
	if validation.Password(strings.Repeat("x", 256), 6) == "" {
		t.Error("задовгий пароль пройшов перевірку")
	}
	// minLength <= 0 трактується як 6 за замовчуванням
	if validation.Password("12345", 0) == "" {
		t.Error("типова мінімальна довжина не застосувалась")
	}
}

func TestCurrency(t *testing.T) {
	if msg := validation.Currency("UAH"); msg != "" {
		t.Errorf("UAH відхилено: %q", msg)
	}
	for _, bad := range []string{"", "ua", "uah", "UAHX", "U1H"} {
		if validation.Currency(bad) == "" {
			t.Errorf("Currency(%q) мав повернути помилку", bad)
		}
	}
}

func TestColor(t *testing.T) {
	if msg := validation.Color("#3B82F6"); msg != "" {
		t.Errorf("#3B82F6 відхилено: %q", msg)
	}
	for _, bad := range []string{"", "3B82F6", "#3B82F", "#3B82F6A", "#GG0000"} {
		if validation.Color(bad) == "" {
			t.Errorf("Color(%q) мав повернути помилку", bad)
		}
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		value    string
		wantFail bool
	}{
		{"100.005", true}, // 3 знаки після коми
		{"0.00", true},    // не більше нуля
		{"9999999999999.99", false},
		{"10000000000000.00", true}, // понад максимум
		{"", true},
		{"abc", true},
		{"-5", true},
		{"0.01", false},
		{"1234.5", false},
	}
	for _, tc := range cases {
		msg := validation.Amount(tc.value)
		if (msg != "") != tc.wantFail {
			t.Errorf("Amount(%q) = %q, очікували помилку: %v", tc.value, msg, tc.wantFail)
		}
	}
}

func TestDescription(t *testing.T) {
	if validation.Description("", true) == "" {
		t.Error("порожній обов'язковий опис пройшов перевірку")
	}
	if msg := validation.Description("", false); msg != "" {
		t.Errorf("порожній необов'язковий опис відхилено: %q", msg)
	}
	if validation.Description(strings.Repeat("о", 5001), false) == "" {
		t.Error("задовгий опис пройшов перевірку")
	}
}

func TestDate(t *testing.T) {
	if msg := validation.Date("2024-03-01", true); msg != "" {
		t.Errorf("коректну дату відхилено: %q", msg)
	}
	if validation.Date("1899-12-31", true) == "" {
		t.Error("дата до 1900 року пройшла перевірку")
	}
	farFuture := time.Now().AddDate(11, 0, 0).Format("2006-01-02")
	if validation.Date(farFuture, true) == "" {
		t.Error("дата за межами 10 років пройшла перевірку")
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if validation.Date(tomorrow, false) == "" {
		t.Error("майбутня дата пройшла перевірку з allowFuture=false")
	}
	if validation.Date("31.12.2024", true) == "" {
		t.Error("неправильний формат дати пройшов перевірку")
	}
}

func TestDateRange(t *testing.T) {
	if validation.DateRange("2024-03-01", "2024-02-01") == "" {
		t.Error("кінець раніше початку пройшов перевірку")
	}
	if validation.DateRange("2024-02-01", "2024-02-01") == "" {
		t.Error("однакові дати пройшли перевірку")
	}
	if msg := validation.DateRange("2024-02-01", "2024-03-01"); msg != "" {
		t.Errorf("коректний діапазон відхилено: %q", msg)
	}
}

func TestID(t *testing.T) {
	if msg := validation.ID("7", "категорію"); msg != "" {
		t.Errorf("коректний ID відхилено: %q", msg)
	}
	for _, bad := range []string{"", "0", "-3", "abc"} {
		if validation.ID(bad, "категорію") == "" {
			t.Errorf("ID(%q) мав повернути помилку", bad)
		}
	}
}

func TestForm(t *testing.T) {
	errors := validation.Form(
		map[string]string{"username": "", "email": "a@b.com"},
		map[string]validation.Validator{
			"username": validation.Username,
			"email":    validation.Email,
		},
	)
	if _, ok := errors["username"]; !ok {
		t.Error("очікували помилку для username")
	}
	if _, ok := errors["email"]; ok {
		t.Error("email коректний, помилки бути не повинно")
	}
	if len(errors) != 1 {
		t.Errorf("очікували рівно одну помилку, отримали %d", len(errors))
	}
}
