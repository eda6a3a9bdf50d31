package utils_test

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/opavlenko/finance-manager/utils"
)

func newRatesServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"result": "success",
			"conversion_rates": {"USD": 1, "UAH": 41.0, "EUR": 0.92, "GBP": 0.79}
		}`)
	}))
}

func TestGetCurrencyRate(t *testing.T) {
	srv := newRatesServer(t)
	defer srv.Close()
	utils.ConfigureRatesAPI(srv.URL, "test-key")

	if err := utils.RefreshRates(); err != nil {
		t.Fatalf("RefreshRates: %v", err)
	}

	rate, err := utils.GetCurrencyRate("UAH")
	if err != nil {
		t.Fatalf("GetCurrencyRate(UAH): %v", err)
	}
	if rate != 41.0 {
		t.Errorf("курс UAH = %v, очікували 41.0", rate)
	}

	if _, err := utils.GetCurrencyRate("XXX"); err == nil {
		t.Error("невідома валюта мала повернути помилку")
	}
}

func TestGetRatesInversion(t *testing.T) {
	srv := newRatesServer(t)
	defer srv.Close()
	utils.ConfigureRatesAPI(srv.URL, "test-key")
	if err := utils.RefreshRates(); err != nil {
		t.Fatalf("RefreshRates: %v", err)
	}

	rates, err := utils.GetRates("UAH", []string{"USD", "EUR", "XXX"})
	if err != nil {
		t.Fatalf("GetRates: %v", err)
	}
	if _, ok := rates["XXX"]; ok {
		t.Error("невідома валюта не повинна потрапляти у відповідь")
	}
	// rate(UAH→USD) = 1 / 41
	if got, want := rates["USD"], 1.0/41.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("rate UAH→USD = %v, очікували %v", got, want)
	}
}

func TestConvertCurrency(t *testing.T) {
	srv := newRatesServer(t)
	defer srv.Close()
	utils.ConfigureRatesAPI(srv.URL, "test-key")
	if err := utils.RefreshRates(); err != nil {
		t.Fatalf("RefreshRates: %v", err)
	}

	// 100 USD → UAH за курсом 41
	got, err := utils.ConvertCurrency(100, "USD", "UAH")
	if err != nil {
		t.Fatalf("ConvertCurrency: %v", err)
	}
	if math.Abs(got-4100) > 1e-9 {
		t.Errorf("конвертація = %v, очікували 4100", got)
	}

	if _, err := utils.ConvertCurrency(100, "USD", "XXX"); err == nil {
		t.Error("конвертація у невідому валюту мала повернути помилку")
	}
}

// Фонове оновлення кешу працює одночасно з обробниками запитів,
// тому читання й запис часу оновлення мають бути безпечними під -race.
func TestConcurrentRefreshAndRead(t *testing.T) {
	srv := newRatesServer(t)
	defer srv.Close()
	utils.ConfigureRatesAPI(srv.URL, "test-key")
	if err := utils.RefreshRates(); err != nil {
		t.Fatalf("RefreshRates: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if err := utils.RefreshRates(); err != nil {
					t.Errorf("RefreshRates: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := utils.GetCurrencyRate("UAH"); err != nil {
					t.Errorf("GetCurrencyRate: %v", err)
					return
				}
				utils.LastRatesUpdate()
			}
		}()
	}
	wg.Wait()
}
