package utils_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/utils"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		value  string
		format string
		want   string
	}{
		{"2024-03-07", "", "07.03.2024"},
		{"2024-03-07", "dd.MM.yyyy", "07.03.2024"},
		{"2024-03-07", "yyyy-MM-dd", "2024-03-07"},
		{"2024-12-31", "dd/MM/yyyy", "31/12/2024"},
		{"не дата", "", utils.InvalidDateMarker},
		{"", "dd.MM.yyyy", utils.InvalidDateMarker},
	}
	for _, tc := range cases {
		if got := utils.FormatDate(tc.value, tc.format); got != tc.want {
			t.Errorf("FormatDate(%q, %q) = %q, очікували %q", tc.value, tc.format, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"0", "UAH", "0.00 UAH"},
		{"1234567.5", "UAH", "1 234 567.50 UAH"},
		{"999.999", "USD", "1 000.00 USD"}, // half-up
		{"9999999999999.99", "UAH", "9 999 999 999 999.99 UAH"},
		{"-45.5", "EUR", "-45.50 EUR"},
	}
	for _, tc := range cases {
		got := utils.FormatMoney(decimal.RequireFromString(tc.amount), tc.currency)
		if got != tc.want {
			t.Errorf("FormatMoney(%s, %s) = %q, очікували %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

// Повторне форматування розібраного результату не змінює числове значення.
func TestFormatMoneyIdempotent(t *testing.T) {
	for _, s := range []string{"0.01", "1234567.89", "9999999999999.99", "100"} {
		amount := decimal.RequireFromString(s)
		first := utils.FormatMoney(amount, "UAH")

		reparsed, err := utils.ParseMoney(first)
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", first, err)
		}
		second := utils.FormatMoney(reparsed, "UAH")
		if first != second {
			t.Errorf("форматування не ідемпотентне: %q != %q", first, second)
		}
		if !reparsed.Equal(amount.Round(2)) {
			t.Errorf("числове значення змінилося: %s != %s", reparsed, amount.Round(2))
		}
	}
}

func TestGenerateChartColors(t *testing.T) {
	colors := utils.GenerateChartColors(5)
	if len(colors) != 5 {
		t.Fatalf("очікували 5 кольорів, отримали %d", len(colors))
	}
	seen := make(map[string]bool)
	for _, c := range colors {
		if len(c) != 7 || !strings.HasPrefix(c, "#") {
			t.Errorf("некоректний формат кольору: %q", c)
		}
		seen[c] = true
	}
	if len(seen) != 5 {
		t.Errorf("кольори мають бути різними, унікальних: %d", len(seen))
	}
	// детермінованість
	again := utils.GenerateChartColors(5)
	for i := range colors {
		if colors[i] != again[i] {
			t.Errorf("палітра недетермінована: %q != %q", colors[i], again[i])
		}
	}
	if utils.GenerateChartColors(0) != nil {
		t.Error("для count=0 очікували nil")
	}
}
