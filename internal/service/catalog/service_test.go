package catalog

import (
	"testing"

	"zapstore/internal/domain"

	"github.com/shopspring/decimal"
)

type stubReader struct {
	products   []domain.Product
	categories []domain.Category
	orders     []domain.Order
	settings   domain.Settings
}

func (s *stubReader) Products() []domain.Product { return s.products }
func (s *stubReader) Categories() []domain.Category { return s.categories }
func (s *stubReader) Orders() []domain.Order { return s.orders }
func (s *stubReader) Settings() domain.Settings { return s.settings }

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestBrowse(t *testing.T) {
	svc := New(&stubReader{products: []domain.Product{
		{ID: "1", Name: "Óculos Aviador", CategoryID: "a", Active: true},
		{ID: "2", Name: "Relógio Premium", CategoryID: "b", Active: true},
		{ID: "3", Name: "Óculos Redondo", CategoryID: "b", Active: false},
		{ID: "4", Name: "ÓCULOS Gatinho", CategoryID: "b", Active: true},
	}})

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all active", Filter{}, []string{"1", "2", "4"}},
		{"explicit all", Filter{CategoryID: AllCategories}, []string{"1", "2", "4"}},
		{"by category", Filter{CategoryID: "b"}, []string{"2", "4"}},
		{"search case insensitive", Filter{Search: "óculos"}, []string{"1", "4"}},
		{"search and category", Filter{CategoryID: "a", Search: " aviador "}, []string{"1"}},
		{"no match", Filter{Search: "bolsa"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(svc.Browse(tc.filter))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestCategoryUsage(t *testing.T) {
	svc := New(&stubReader{
		categories: []domain.Category{{ID: "a", Name: "A"}, {ID: "b", Name: "B", Order: 1}},
		products: []domain.Product{
			{ID: "1", CategoryID: "a"}, {ID: "2", CategoryID: "a"}, {ID: "3", CategoryID: "ghost"},
		},
	})
	usage := svc.CategoryUsage()
	if len(usage) != 2 || usage[0].Products != 2 || usage[1].Products != 0 {
		t.Fatalf("unexpected usage %+v", usage)
	}
}

func TestDashboard(t *testing.T) {
	svc := New(&stubReader{
		orders: []domain.Order{
			{ID: "a", Status: domain.OrderPaid, Total: dec("100.50")},
			{ID: "b", Status: domain.OrderPaid, Total: dec("20")},
			{ID: "c", Status: domain.OrderPending, Total: dec("999")},
			{ID: "d", Status: domain.OrderCancelled, Total: dec("5")},
		},
		products: []domain.Product{{ID: "1", Stock: 2}, {ID: "2", Stock: 10}, {ID: "3", Stock: 0}},
	})
	d := svc.Dashboard()
	if !d.TotalSales.Equal(dec("120.50")) {
		t.Fatalf("unexpected total sales %s", d.TotalSales)
	}
	if d.PendingOrders != 1 || d.StockUnits != 12 || d.ProductCount != 3 {
		t.Fatalf("unexpected dashboard %+v", d)
	}
	if got := ids(d.LowStock); len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("unexpected low stock %v", got)
	}
}

func TestOrdersForClient(t *testing.T) {
	svc := New(&stubReader{orders: []domain.Order{
		{ID: "n", ClientID: "client1"}, {ID: "g", ClientID: domain.GuestID}, {ID: "o", ClientID: "client1"},
	}})
	got := svc.OrdersForClient("client1")
	if len(got) != 2 || got[0].ID != "n" || got[1].ID != "o" {
		t.Fatalf("unexpected orders %+v", got)
	}
	if len(svc.OrdersForClient("nobody")) != 0 {
		t.Fatalf("expected no orders")
	}
}

func TestInstallment(t *testing.T) {
	if got := Installment(dec("189.90"), 12); !got.Equal(dec("15.83")) {
		t.Fatalf("unexpected installment %s", got)
	}
	if got := Installment(dec("100"), 0); !got.Equal(dec("8.33")) {
		t.Fatalf("expected default of 12 installments, got %s", got)
	}
	if got := Installment(dec("100"), 4); !got.Equal(dec("25")) {
		t.Fatalf("unexpected installment %s", got)
	}

	svc := New(&stubReader{})
	if svc.Installments() != 12 {
		t.Fatalf("expected default installments")
	}
	svc = New(&stubReader{settings: domain.Settings{MaxInstallments: 3}})
	if svc.Installments() != 3 {
		t.Fatalf("expected configured installments")
	}
}
