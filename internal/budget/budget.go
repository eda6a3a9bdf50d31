// Package budget містить арифметику бюджетів: відсоток використання,
// класифікацію стану та обчислення кінцевої дати періоду.
package budget

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/models"
)

// Стани бюджету для відображення у списку.
const (
	StatusUnder    = "under"
	StatusWarning  = "warning"
	StatusCritical = "critical"
	StatusExceeded = "exceeded"
	StatusUnknown  = "unknown"
)

// Progress повертає відсоток використання бюджету, обрізаний до [0, 100].
// Для нульового чи від'ємного ліміту повертає 0; NaN та Inf назовні не виходять.
func Progress(spent, total decimal.Decimal) float64 {
	if total.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := spent.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return math.Min(100, math.Max(0, pct))
}

// ProgressColor відображає відсоток у колір індикатора:
// до 50 — зелений, до 80 — жовтий, далі — червоний.
func ProgressColor(progress float64) string {
	if math.IsNaN(progress) {
		return "gray"
	}
	switch {
	case progress < 50:
		return "green"
	case progress < 80:
		return "yellow"
	default:
		return "red"
	}
}

// Status класифікує бюджет. "exceeded" накладається поверх критичного
// стану, коли витрачено більше за ліміт.
func Status(spent, total decimal.Decimal) string {
	if total.LessThanOrEqual(decimal.Zero) {
		return StatusUnknown
	}
	if spent.GreaterThan(total) {
		return StatusExceeded
	}
	switch ProgressColor(Progress(spent, total)) {
	case "green":
		return StatusUnder
	case "yellow":
		return StatusWarning
	default:
		return StatusCritical
	}
}

// DeriveEndDate обчислює кінцеву дату бюджету з початкової дати та періоду:
// week — start + 6 днів (включне вікно на 7 днів), month — день перед тим
// самим числом наступного місяця, year — те саме для наступного року.
// Якщо відповідного числа у цільовому місяці немає (31 січня + місяць),
// вікно закінчується останнім днем цього місяця, без зсуву на сусідній.
func DeriveEndDate(start time.Time, period string) (time.Time, error) {
	switch period {
	case models.PeriodWeek:
		return start.AddDate(0, 0, 6), nil
	case models.PeriodMonth:
		return endOfWindow(start, 0, 1), nil
	case models.PeriodYear:
		return endOfWindow(start, 1, 0), nil
	default:
		return time.Time{}, fmt.Errorf("невідомий період бюджету: %q", period)
	}
}

func endOfWindow(start time.Time, years, months int) time.Time {
	y, m, d := start.Date()
	// Останній день цільового місяця: нульовий день наступного за ним.
	lastDay := time.Date(y+years, m+time.Month(months)+1, 0, 0, 0, 0, 0, start.Location()).Day()
	if d > lastDay {
		return time.Date(y+years, m+time.Month(months), lastDay, 0, 0, 0, 0, start.Location())
	}
	return time.Date(y+years, m+time.Month(months), d, 0, 0, 0, 0, start.Location()).AddDate(0, 0, -1)
}
