package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Курси кешуються відносно USD; крос-курс між довільними валютами
// обчислюється інверсією: rate(a→b) = rate[b] / rate[a].

type CurrencyRate struct {
	Code string  `json:"currency"`
	Rate float64 `json:"rate"`
}

var (
	cachedRates = sync.Map{}
	cacheMu     sync.Mutex
	// UnixNano останнього успішного оновлення; atomic, бо читається
	// з обробників запитів паралельно з фоновим оновленням.
	lastFetch    atomic.Int64
	cacheTimeout = 1 * time.Hour

	apiURL string
	apiKey string
)

func lastFetchTime() time.Time {
	return time.Unix(0, lastFetch.Load())
}

var ErrRatesUnavailable = errors.New("курси валют недоступні")

// ConfigureRatesAPI задає адресу та ключ зовнішнього API курсів.
// Викликається один раз під час старту.
func ConfigureRatesAPI(url, key string) {
	apiURL = url
	apiKey = key
}

// GetCurrencyRate повертає курс валюти відносно USD, за потреби
// оновлюючи кеш. Якщо оновлення не вдалося, віддає застарілі дані.
func GetCurrencyRate(currencyCode string) (float64, error) {
	if rate, ok := cachedRates.Load(currencyCode); ok {
		if time.Since(lastFetchTime()) < cacheTimeout {
			return rate.(CurrencyRate).Rate, nil
		}
	}

	if time.Since(lastFetchTime()) >= cacheTimeout {
		if err := RefreshRates(); err != nil {
			log.Printf("не вдалося оновити курси валют: %v", err)
			if rate, ok := cachedRates.Load(currencyCode); ok {
				return rate.(CurrencyRate).Rate, nil
			}
			return 0, err
		}
	}

	if rate, ok := cachedRates.Load(currencyCode); ok {
		return rate.(CurrencyRate).Rate, nil
	}
	return 0, fmt.Errorf("валюта %s відсутня у кеші курсів", currencyCode)
}

// RefreshRates примусово оновлює кеш курсів. До трьох спроб.
func RefreshRates() error {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if apiKey == "" {
		return errors.New("ключ API курсів валют не налаштовано")
	}

	client := http.Client{Timeout: 10 * time.Second}
	// Базова валюта кешу — USD, для сумісності зі списком валют API.
	url := fmt.Sprintf("%s/%s/latest/USD", apiURL, apiKey)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if attempt > 1 {
			time.Sleep(2 * time.Second)
		}

		resp, err := client.Get(url)
		if err != nil {
			lastErr = err
			log.Printf("помилка запиту курсів (спроба %d): %v", attempt, err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("API курсів повернув статус %d", resp.StatusCode)
			log.Printf("%v (спроба %d)", lastErr, attempt)
			continue
		}

		var response struct {
			ConversionRates map[string]float64 `json:"conversion_rates"`
		}
		err = json.NewDecoder(resp.Body).Decode(&response)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			log.Printf("помилка розбору відповіді API (спроба %d): %v", attempt, err)
			continue
		}

		if len(response.ConversionRates) == 0 {
			lastErr = errors.New("API курсів повернув порожні дані")
			continue
		}

		for code, rate := range response.ConversionRates {
			if rate > 0 {
				cachedRates.Store(code, CurrencyRate{Code: code, Rate: rate})
			}
		}
		lastFetch.Store(time.Now().UnixNano())
		return nil
	}

	return fmt.Errorf("%w: %v", ErrRatesUnavailable, lastErr)
}

// GetRates повертає курси переліку валют відносно базової.
func GetRates(base string, targets []string) (map[string]float64, error) {
	baseRate, err := GetCurrencyRate(base)
	if err != nil {
		return nil, err
	}
	rates := make(map[string]float64, len(targets))
	for _, target := range targets {
		targetRate, err := GetCurrencyRate(target)
		if err != nil {
			continue // невідомі валюти пропускаємо
		}
		rates[target] = targetRate / baseRate
	}
	return rates, nil
}

// ConvertCurrency конвертує суму між валютами через кешовані курси.
// Обидва курси запитуються паралельно.
func ConvertCurrency(amount float64, fromCurrency, toCurrency string) (float64, error) {
	type rateResult struct {
		rate float64
		err  error
	}
	fromCh := make(chan rateResult, 1)
	toCh := make(chan rateResult, 1)

	go func() {
		r, err := GetCurrencyRate(fromCurrency)
		fromCh <- rateResult{r, err}
	}()
	go func() {
		r, err := GetCurrencyRate(toCurrency)
		toCh <- rateResult{r, err}
	}()

	from := <-fromCh
	if from.err != nil {
		return 0, from.err
	}
	to := <-toCh
	if to.err != nil {
		return 0, to.err
	}

	if from.rate == 0 || to.rate == 0 {
		return 0, errors.New("некоректні курси валют")
	}
	return amount * (to.rate / from.rate), nil
}

// LastRatesUpdate повертає час останнього успішного оновлення кешу.
func LastRatesUpdate() time.Time {
	return lastFetchTime()
}
