package models

import "github.com/shopspring/decimal"

func init() {
	// Суми в API передаються як JSON-числа, а не рядки.
	decimal.MarshalJSONWithoutQuotes = true
}
