package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidDateMarker повертається замість відформатованої дати,
// коли вхідне значення не вдалося розібрати.
const InvalidDateMarker = "Недійсна дата"

// DefaultDateFormat — формат дат за замовчуванням.
const DefaultDateFormat = "dd.MM.yyyy"

// FormatDate форматує дату за шаблоном з токенами dd, MM, yyyy.
// Приймає YYYY-MM-DD або RFC3339; для нерозбірливого входу повертає
// маркер замість помилки.
func FormatDate(value, format string) string {
	if format == "" {
		format = DefaultDateFormat
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		d, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return InvalidDateMarker
	}
	result := format
	result = strings.Replace(result, "dd", fmt.Sprintf("%02d", d.Day()), 1)
	result = strings.Replace(result, "MM", fmt.Sprintf("%02d", int(d.Month())), 1)
	result = strings.Replace(result, "yyyy", fmt.Sprintf("%04d", d.Year()), 1)
	return result
}

// FormatMoney форматує суму: 2 знаки після коми (округлення half-up),
// пробіл як розділювач тисяч, код валюти в кінці.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = "UAH"
	}
	fixed := amount.Round(2).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := strings.Join(groups, " ") + "." + fracPart
	if negative {
		formatted = "-" + formatted
	}
	return formatted + " " + currency
}

// FormatCurrency — псевдонім FormatMoney, збережений заради сумісності
// зі старою назвою в інтерфейсі.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return FormatMoney(amount, currency)
}

// ParseMoney розбирає рядок, створений FormatMoney, назад у число.
func ParseMoney(formatted string) (decimal.Decimal, error) {
	s := strings.TrimSpace(formatted)
	if i := strings.LastIndex(s, " "); i >= 0 {
		if tail := s[i+1:]; len(tail) == 3 && strings.ToUpper(tail) == tail {
			s = s[:i]
		}
	}
	s = strings.ReplaceAll(s, " ", "")
	return decimal.NewFromString(s)
}

// GenerateChartColors повертає count кольорів, рівномірно розподілених за
// відтінком по колірному колу (насиченість і світлість фіксовані).
// Результат детермінований і стабільний за порядком.
func GenerateChartColors(count int) []string {
	if count <= 0 {
		return nil
	}
	colors := make([]string, 0, count)
	for i := 0; i < count; i++ {
		hue := float64(i) * 360 / float64(count)
		r, g, b := hslToRGB(hue, 0.70, 0.50)
		colors = append(colors, fmt.Sprintf("#%02X%02X%02X", r, g, b))
	}
	return colors
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255))
}
