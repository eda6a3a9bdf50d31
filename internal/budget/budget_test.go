package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/internal/budget"
	"github.com/opavlenko/finance-manager/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProgress(t *testing.T) {
	cases := []struct {
		name  string
		spent string
		total string
		want  float64
	}{
		{"нульовий ліміт", "50", "0", 0},
		{"від'ємний ліміт", "50", "-10", 0},
		{"половина", "50", "100", 50},
		{"перевитрата обрізається до 100", "250", "100", 100},
		{"рівно ліміт", "100", "100", 100},
		{"нічого не витрачено", "0", "100", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := budget.Progress(dec(tc.spent), dec(tc.total))
			if got != tc.want {
				t.Errorf("Progress(%s, %s) = %v, очікували %v", tc.spent, tc.total, got, tc.want)
			}
		})
	}
}

func TestProgressMonotonic(t *testing.T) {
	total := dec("1000")
	prev := -1.0
	for spent := 0; spent <= 1500; spent += 50 {
		got := budget.Progress(decimal.NewFromInt(int64(spent)), total)
		if got < prev {
			t.Fatalf("прогрес зменшився: spent=%d, %v < %v", spent, got, prev)
		}
		prev = got
	}
}

func TestProgressColor(t *testing.T) {
	cases := []struct {
		progress float64
		want     string
	}{
		{0, "green"},
		{49.9, "green"},
		{50, "yellow"},
		{79.9, "yellow"},
		{80, "red"},
		{100, "red"},
	}
	for _, tc := range cases {
		if got := budget.ProgressColor(tc.progress); got != tc.want {
			t.Errorf("ProgressColor(%v) = %q, очікували %q", tc.progress, got, tc.want)
		}
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		spent string
		total string
		want  string
	}{
		{"10", "100", budget.StatusUnder},
		{"60", "100", budget.StatusWarning},
		{"85", "100", budget.StatusCritical},
		{"100", "100", budget.StatusCritical},
		{"100.01", "100", budget.StatusExceeded},
		{"5", "0", budget.StatusUnknown},
	}
	for _, tc := range cases {
		if got := budget.Status(dec(tc.spent), dec(tc.total)); got != tc.want {
			t.Errorf("Status(%s, %s) = %q, очікували %q", tc.spent, tc.total, got, tc.want)
		}
	}
}

func TestDeriveEndDate(t *testing.T) {
	cases := []struct {
		start  string
		period string
		want   string
	}{
		{"2024-01-15", models.PeriodWeek, "2024-01-21"},
		{"2024-01-31", models.PeriodMonth, "2024-02-29"}, // високосний лютий
		{"2023-01-31", models.PeriodMonth, "2023-02-28"},
		{"2024-01-15", models.PeriodMonth, "2024-02-14"},
		{"2024-03-31", models.PeriodMonth, "2024-04-30"},
		{"2024-01-01", models.PeriodYear, "2024-12-31"},
		{"2024-02-29", models.PeriodYear, "2025-02-28"},
	}
	for _, tc := range cases {
		start, err := time.Parse("2006-01-02", tc.start)
		if err != nil {
			t.Fatal(err)
		}
		got, err := budget.DeriveEndDate(start, tc.period)
		if err != nil {
			t.Fatalf("DeriveEndDate(%s, %s): %v", tc.start, tc.period, err)
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("DeriveEndDate(%s, %s) = %s, очікували %s",
				tc.start, tc.period, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestDeriveEndDateUnknownPeriod(t *testing.T) {
	if _, err := budget.DeriveEndDate(time.Now(), "quarter"); err == nil {
		t.Error("невідомий період мав повернути помилку")
	}
}
