// Package catalog derives the read models shown by the storefront and the
// admin console from the store state.
package catalog

import (
	"strings"

	"zapstore/internal/domain"

	"github.com/shopspring/decimal"
)

// AllCategories disables the category filter.
const AllCategories = "all"

const defaultInstallments = 12

// Reader is the read-only view of the store this package needs.
type Reader interface {
	Products() []domain.Product
	Categories() []domain.Category
	Orders() []domain.Order
	Settings() domain.Settings
}

type Service struct {
	store Reader
}

func New(store Reader) *Service {
	return &Service{store: store}
}

type Filter struct {
	CategoryID string
	Search     string
}

// Browse lists active products in catalog order, optionally restricted to one
// category and to names containing Search (case-insensitive).
func (s *Service) Browse(f Filter) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := []domain.Product{}
	for _, p := range s.store.Products() {
		if !p.Active {
			continue
		}
		if f.CategoryID != "" && f.CategoryID != AllCategories && p.CategoryID != f.CategoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CategoryUsage is a category with the number of products pointing at it.
type CategoryUsage struct {
	domain.Category
	Products int `json:"products"`
}

func (s *Service) CategoryUsage() []CategoryUsage {
	counts := map[string]int{}
	for _, p := range s.store.Products() {
		counts[p.CategoryID]++
	}
	cats := s.store.Categories()
	out := make([]CategoryUsage, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryUsage{Category: c, Products: counts[c.ID]})
	}
	return out
}

type Dashboard struct {
	TotalSales    decimal.Decimal  `json:"totalSales"`
	PendingOrders int              `json:"pendingOrders"`
	StockUnits    int              `json:"stockUnits"`
	ProductCount  int              `json:"productCount"`
	LowStock      []domain.Product `json:"lowStock"`
}

// Dashboard sums paid orders only; pending and cancelled totals are ignored.
func (s *Service) Dashboard() Dashboard {
	d := Dashboard{TotalSales: decimal.Zero, LowStock: []domain.Product{}}
	for _, o := range s.store.Orders() {
		switch o.Status {
		case domain.OrderPaid:
			d.TotalSales = d.TotalSales.Add(o.Total)
		case domain.OrderPending:
			d.PendingOrders++
		}
	}
	products := s.store.Products()
	d.ProductCount = len(products)
	for _, p := range products {
		d.StockUnits += p.Stock
		if p.LowStock() {
			d.LowStock = append(d.LowStock, p)
		}
	}
	return d
}

// OrdersForClient returns the client's orders, newest first.
func (s *Service) OrdersForClient(clientID string) []domain.Order {
	out := []domain.Order{}
	for _, o := range s.store.Orders() {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}

// Installments is the number of card installments offered, 12 when unset.
func (s *Service) Installments() int {
	if n := s.store.Settings().MaxInstallments; n > 0 {
		return n
	}
	return defaultInstallments
}

// Installment is price split into maxInstallments parts, rounded to cents.
// A non-positive maxInstallments means 12.
func Installment(price decimal.Decimal, maxInstallments int) decimal.Decimal {
	if maxInstallments <= 0 {
		maxInstallments = defaultInstallments
	}
	return price.Div(decimal.NewFromInt(int64(maxInstallments))).Round(2)
}
