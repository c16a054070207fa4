package domain

import "github.com/shopspring/decimal"

func init() {
	// Persisted slots carry prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CategoryID  string          `json:"categoryId"`
	Active      bool            `json:"active"`
	Order       int             `json:"order"`
	Stock       int             `json:"stock"`
}

// InStock reports whether at least one unit can be sold.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// LowStock mirrors the storefront badge shown for the last couple of units.
func (p Product) LowStock() bool {
	return p.Stock <= 2
}
