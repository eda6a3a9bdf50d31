package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opavlenko/finance-manager/utils"
)

// ExchangeRates — GET /api/exchange-rates?base=UAH&target=USD,EUR,GBP.
// Курси беруться з кешу utils, а не напряму із зовнішнього API.
func ExchangeRates() gin.HandlerFunc {
	return func(c *gin.Context) {
		base := c.DefaultQuery("base", "UAH")
		targets := strings.Split(c.DefaultQuery("target", "USD,EUR,GBP"), ",")

		rates, err := utils.GetRates(base, targets)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to fetch exchange rates",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"base_currency": base,
			"rates":         rates,
			"timestamp":     utils.LastRatesUpdate().Unix(),
		})
	}
}

// ConvertCurrency — GET /api/exchange-rates/convert?from=UAH&to=USD&amount=100.
func ConvertCurrency() gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.DefaultQuery("from", "UAH")
		to := c.DefaultQuery("to", "USD")
		rawAmount := c.Query("amount")
		if rawAmount == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required"})
			return
		}
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a number"})
			return
		}

		converted, err := utils.ConvertCurrency(amount, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to convert currency",
				"details": err.Error(),
			})
			return
		}
		rate, err := utils.GetRates(from, []string{to})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to convert currency",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"from":      gin.H{"currency": from, "amount": amount},
			"to":        gin.H{"currency": to, "amount": converted},
			"rate":      rate[to],
			"timestamp": utils.LastRatesUpdate().Unix(),
		})
	}
}
