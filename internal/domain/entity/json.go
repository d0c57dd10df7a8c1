package entity

import "github.com/shopspring/decimal"

func init() {
	// Montos como números JSON (99.5) y no como cadenas ("99.5").
	decimal.MarshalJSONWithoutQuotes = true
}
