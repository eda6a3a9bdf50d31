package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

type RatesResponse struct {
	BaseCurrency string             `json:"base_currency"`
	Rates        map[string]float64 `json:"rates"`
	Timestamp    int64              `json:"timestamp"`
}

type ConversionSide struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type ConversionResponse struct {
	From      ConversionSide `json:"from"`
	To        ConversionSide `json:"to"`
	Rate      float64        `json:"rate"`
	Timestamp int64          `json:"timestamp"`
}

// ExchangeRates повертає курси base → targets.
func (c *Client) ExchangeRates(ctx context.Context, base string, targets []string) (*RatesResponse, error) {
	query := url.Values{}
	if base != "" {
		query.Set("base", base)
	}
	if len(targets) > 0 {
		query.Set("target", strings.Join(targets, ","))
	}
	var resp RatesResponse
	if err := c.get(ctx, "/api/exchange-rates", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Convert переводить суму з однієї валюти в іншу за поточним курсом.
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (*ConversionResponse, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	var resp ConversionResponse
	if err := c.get(ctx, "/api/exchange-rates/convert", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
