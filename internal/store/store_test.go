package store

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"zapstore/internal/domain"
	"zapstore/internal/persist"

	"github.com/shopspring/decimal"
)

type recordingPersister struct {
	products     [][]domain.Product
	categories   [][]domain.Category
	settings     []domain.Settings
	users        []*domain.User
	orders       [][]domain.Order
	creds        []domain.AdminCredentials
	placements   int
	clearedCreds int
}

func (r *recordingPersister) SaveProducts(_ context.Context, p []domain.Product) {
	r.products = append(r.products, append([]domain.Product(nil), p...))
}

func (r *recordingPersister) SaveCategories(_ context.Context, c []domain.Category) {
	r.categories = append(r.categories, append([]domain.Category(nil), c...))
}

func (r *recordingPersister) SaveSettings(_ context.Context, s domain.Settings) {
	r.settings = append(r.settings, s)
}

func (r *recordingPersister) SaveUser(_ context.Context, u *domain.User) {
	r.users = append(r.users, u)
}

func (r *recordingPersister) SaveOrders(_ context.Context, o []domain.Order) {
	r.orders = append(r.orders, append([]domain.Order(nil), o...))
}

func (r *recordingPersister) SaveAdminCredentials(_ context.Context, c domain.AdminCredentials) {
	r.creds = append(r.creds, c)
}

func (r *recordingPersister) SaveOrderPlacement(_ context.Context, p []domain.Product, o []domain.Order) {
	r.placements++
	r.products = append(r.products, append([]domain.Product(nil), p...))
	r.orders = append(r.orders, append([]domain.Order(nil), o...))
}

func (r *recordingPersister) ClearAdminCredentials(context.Context) {
	r.clearedCreds++
}

type recordingPublisher struct {
	placed  []domain.Order
	changed []domain.Order
	err     error
}

func (p *recordingPublisher) OrderPlaced(_ context.Context, o domain.Order) error {
	p.placed = append(p.placed, o)
	return p.err
}

func (p *recordingPublisher) OrderStatusChanged(_ context.Context, o domain.Order) error {
	p.changed = append(p.changed, o)
	return p.err
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestStore(t *testing.T, products ...domain.Product) (*Store, *recordingPersister, *recordingPublisher) {
	t.Helper()
	snap := persist.Defaults()
	if products != nil {
		snap.Products = products
	}
	p := &recordingPersister{}
	pub := &recordingPublisher{}
	codes := []string{"AAA111", "BBB222", "CCC333"}
	n := 0
	s := New(snap, p, pub, logDiscard(),
		WithClock(func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }),
		WithOrderCodeGenerator(func() (string, error) {
			c := codes[n%len(codes)]
			n++
			return c, nil
		}),
	)
	return s, p, pub
}

func TestScenarioPlaceOrderPix(t *testing.T) {
	ctx := context.Background()
	s, p, pub := newTestStore(t,
		domain.Product{ID: "A", Name: "Product A", Price: price("10"), Active: true, Stock: 5},
		domain.Product{ID: "B", Name: "Product B", Price: price("5"), Active: true, Stock: 1},
	)

	for _, id := range []string{"A", "A", "B"} {
		if notice, err := s.AddToCart(id); err != nil || notice != nil {
			t.Fatalf("add %s: notice=%v err=%v", id, notice, err)
		}
	}

	order, err := s.PlaceOrder(ctx, domain.PaymentPIX)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !order.Total.Equal(price("25")) {
		t.Fatalf("expected total 25, got %s", order.Total)
	}
	if order.Status != domain.OrderPending || order.PaymentMethod != domain.PaymentPIX {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.ClientID != domain.GuestID || order.ClientName != domain.GuestName {
		t.Fatalf("expected guest order, got %s/%s", order.ClientID, order.ClientName)
	}
	if order.ID != "AAA111" {
		t.Fatalf("unexpected id %s", order.ID)
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("cart not cleared")
	}
	if got := s.Orders(); len(got) != 1 || got[0].ID != order.ID {
		t.Fatalf("order not recorded first: %+v", got)
	}

	a, _ := s.Product("A")
	b, _ := s.Product("B")
	if a.Stock != 3 || b.Stock != 0 {
		t.Fatalf("unexpected stock A=%d B=%d", a.Stock, b.Stock)
	}
	if p.placements != 1 {
		t.Fatalf("expected one atomic placement write, got %d", p.placements)
	}
	if len(pub.placed) != 1 || pub.placed[0].ID != order.ID {
		t.Fatalf("expected order placed event, got %+v", pub.placed)
	}
}

func TestPlaceOrderUsesSessionUserAndPrepends(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t, domain.Product{ID: "A", Price: price("1.10"), Stock: 10})
	s.SetUser(ctx, &domain.User{ID: "client1", Name: "João Silva", Role: domain.RoleClient})

	_, _ = s.AddToCart("A")
	first, _ := s.PlaceOrder(ctx, domain.PaymentCard)
	_, _ = s.AddToCart("A")
	second, _ := s.PlaceOrder(ctx, domain.PaymentPIX)

	orders := s.Orders()
	if len(orders) != 2 || orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", orders)
	}
	if first.ClientID != "client1" || first.ClientName != "João Silva" {
		t.Fatalf("unexpected client snapshot %+v", first)
	}
	if !first.CreatedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected createdAt %v", first.CreatedAt)
	}
}

func TestPlaceOrderRejectsEmptyCartAndBadMethod(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newTestStore(t)
	if _, err := s.PlaceOrder(ctx, domain.PaymentPIX); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	_, _ = s.AddToCart("101")
	if _, err := s.PlaceOrder(ctx, domain.PaymentMethod("BOLETO")); !errors.Is(err, domain.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
	if len(s.Cart()) != 1 || p.placements != 0 {
		t.Fatalf("state changed on rejected order")
	}
}

func TestPlaceOrderKeepsSnapshotsWhenProductDeleted(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t, domain.Product{ID: "A", Name: "Old", Price: price("7"), Stock: 2})
	_, _ = s.AddToCart("A")
	s.DeleteProduct(ctx, "A")

	order, err := s.PlaceOrder(ctx, domain.PaymentPIX)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Items[0].Name != "Old" || !order.Total.Equal(price("7")) {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(s.Products()) != 0 {
		t.Fatalf("deleted product resurrected")
	}
}

func TestOrderIDCollisionFallsBack(t *testing.T) {
	ctx := context.Background()
	snap := persist.Defaults()
	s := New(snap, &recordingPersister{}, nil, logDiscard(),
		WithOrderCodeGenerator(func() (string, error) { return "SAME01", nil }),
		WithIDGenerator(func() string { return "fallback-uuid" }),
	)
	_, _ = s.AddToCart("101")
	first, _ := s.PlaceOrder(ctx, domain.PaymentPIX)
	_, _ = s.AddToCart("101")
	second, _ := s.PlaceOrder(ctx, domain.PaymentPIX)

	if first.ID != "SAME01" || second.ID != "fallback-uuid" {
		t.Fatalf("unexpected ids %s %s", first.ID, second.ID)
	}
}

func TestRandomOrderCode(t *testing.T) {
	for range 50 {
		code, err := randomOrderCode()
		if err != nil {
			t.Fatalf("code: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("unexpected length %q", code)
		}
		for _, r := range code {
			if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
				t.Fatalf("unexpected rune in %q", code)
			}
		}
	}
}

func TestAddToCartNotices(t *testing.T) {
	s, _, _ := newTestStore(t,
		domain.Product{ID: "sold", Stock: 0},
		domain.Product{ID: "one", Stock: 1},
	)

	notice, err := s.AddToCart("sold")
	if err != nil || notice == nil || notice.Code != domain.NoticeOutOfStock {
		t.Fatalf("expected out of stock notice, got %v %v", notice, err)
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("cart changed for sold out product")
	}

	if notice, _ := s.AddToCart("one"); notice != nil {
		t.Fatalf("unexpected notice %v", notice)
	}
	notice, _ = s.AddToCart("one")
	if notice == nil || notice.Code != domain.NoticeStockLimit {
		t.Fatalf("expected stock limit notice, got %v", notice)
	}
	if cart := s.Cart(); len(cart) != 1 || cart[0].Quantity != 1 {
		t.Fatalf("line changed on rejected add: %+v", cart)
	}

	if _, err := s.AddToCart("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCartQuantity(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t, domain.Product{ID: "A", Stock: 3})
	_, _ = s.AddToCart("A")

	if n, _ := s.UpdateCartQuantity("A", -5); n != nil || s.Cart()[0].Quantity != 1 {
		t.Fatalf("expected floor at 1, got %+v notice=%v", s.Cart(), n)
	}
	if n, _ := s.UpdateCartQuantity("A", 2); n != nil || s.Cart()[0].Quantity != 3 {
		t.Fatalf("expected 3, got %+v", s.Cart())
	}
	n, _ := s.UpdateCartQuantity("A", 1)
	if n == nil || n.Code != domain.NoticeStockLimit || s.Cart()[0].Quantity != 3 {
		t.Fatalf("expected rejection at stock, got %+v notice=%v", s.Cart(), n)
	}

	if _, err := s.UpdateCartQuantity("nope", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s.DeleteProduct(ctx, "A")
	if n, _ := s.UpdateCartQuantity("A", 10); n != nil || s.Cart()[0].Quantity != 13 {
		t.Fatalf("deleted product should not cap quantity, got %+v", s.Cart())
	}
}

func TestRemoveAndClearCart(t *testing.T) {
	s, _, _ := newTestStore(t, domain.Product{ID: "A", Stock: 3}, domain.Product{ID: "B", Stock: 3})
	_, _ = s.AddToCart("A")
	_, _ = s.AddToCart("B")
	s.RemoveFromCart("A")
	s.RemoveFromCart("missing")
	if cart := s.Cart(); len(cart) != 1 || cart[0].ID != "B" {
		t.Fatalf("unexpected cart %+v", cart)
	}
	s.ClearCart()
	if len(s.Cart()) != 0 {
		t.Fatalf("cart not cleared")
	}
}

func TestSaveAndDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newTestStore(t)

	saved := s.SaveProduct(ctx, domain.Product{Name: "Novo", Price: price("-3"), Stock: -1})
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got, err := s.Product(saved.ID); err != nil || got.Stock != -1 {
		t.Fatalf("expected product stored verbatim, got %+v %v", got, err)
	}

	s.SaveProduct(ctx, domain.Product{ID: "101", Name: "Renamed", Stock: 4})
	if got, _ := s.Product("101"); got.Name != "Renamed" {
		t.Fatalf("expected replacement, got %+v", got)
	}
	if len(s.Products()) != 2 {
		t.Fatalf("expected 2 products, got %d", len(s.Products()))
	}

	s.DeleteProduct(ctx, "101")
	if _, err := s.Product("101"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected product deleted")
	}
	if len(p.products) != 3 {
		t.Fatalf("expected a products write per mutation, got %d", len(p.products))
	}
}

func TestDeleteCategoryPolicy(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newTestStore(t,
		domain.Product{ID: "x", CategoryID: "1"},
		domain.Product{ID: "y", CategoryID: "1"},
	)

	notice := s.DeleteCategory(ctx, "1")
	if notice == nil || notice.Code != domain.NoticeCategoryInUse {
		t.Fatalf("expected category in use notice, got %v", notice)
	}
	if notice.Message != "Não é possível excluir esta categoria pois existem 2 produtos vinculados a ela." {
		t.Fatalf("unexpected message %q", notice.Message)
	}
	if len(s.Categories()) != 2 || len(p.categories) != 0 {
		t.Fatalf("category removed despite products")
	}

	if notice := s.DeleteCategory(ctx, "2"); notice != nil {
		t.Fatalf("unexpected notice %v", notice)
	}
	if cats := s.Categories(); len(cats) != 1 || cats[0].ID != "1" {
		t.Fatalf("unexpected categories %+v", cats)
	}
}

func TestCategoriesSortedByOrder(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	s.SaveCategory(ctx, domain.Category{ID: "z", Name: "Primeira", Order: -1})
	created := s.SaveCategory(ctx, domain.Category{Name: "Última", Order: 9})
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	cats := s.Categories()
	if cats[0].ID != "z" || cats[len(cats)-1].ID != created.ID {
		t.Fatalf("unexpected order %+v", cats)
	}
}

func TestUpdateOrderStatusAnyToAny(t *testing.T) {
	ctx := context.Background()
	s, p, pub := newTestStore(t)
	_, _ = s.AddToCart("101")
	order, _ := s.PlaceOrder(ctx, domain.PaymentPIX)

	for _, st := range []domain.OrderStatus{domain.OrderPaid, domain.OrderPending, domain.OrderCancelled} {
		ok, err := s.UpdateOrderStatus(ctx, order.ID, st)
		if err != nil || !ok {
			t.Fatalf("update to %s: ok=%v err=%v", st, ok, err)
		}
		if got := s.Orders()[0].Status; got != st {
			t.Fatalf("expected %s, got %s", st, got)
		}
	}
	if len(p.orders) != 4 {
		t.Fatalf("expected placement plus three status writes, got %d", len(p.orders))
	}
	if len(pub.changed) != 3 || pub.changed[2].Status != domain.OrderCancelled {
		t.Fatalf("unexpected status events %+v", pub.changed)
	}

	if ok, err := s.UpdateOrderStatus(ctx, "NOPE", domain.OrderPaid); ok || err != nil {
		t.Fatalf("expected not found, got ok=%v err=%v", ok, err)
	}
	if _, err := s.UpdateOrderStatus(ctx, order.ID, "SHIPPED"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPublishFailureDoesNotUndoOrder(t *testing.T) {
	ctx := context.Background()
	s, _, pub := newTestStore(t)
	pub.err = errors.New("broker down")
	_, _ = s.AddToCart("101")
	if _, err := s.PlaceOrder(ctx, domain.PaymentCard); err != nil {
		t.Fatalf("place order: %v", err)
	}
	if len(s.Orders()) != 1 {
		t.Fatalf("order lost after publish failure")
	}
}

func TestCredentialsUpdateAndReset(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newTestStore(t)
	s.UpdateAdminCredentials(ctx, domain.AdminCredentials{Email: "novo@zap.com", Password: "abc"})
	if got := s.AdminCredentials(); got.Email != "novo@zap.com" {
		t.Fatalf("unexpected creds %+v", got)
	}
	s.ResetAdminCredentials(ctx)
	if got := s.AdminCredentials(); got != domain.DefaultAdminCredentials() {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if len(p.creds) != 1 || p.clearedCreds != 1 {
		t.Fatalf("unexpected persistence calls creds=%d cleared=%d", len(p.creds), p.clearedCreds)
	}
}

func TestSessionAndSettings(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newTestStore(t)
	if s.User() != nil {
		t.Fatalf("expected no session")
	}
	u := &domain.User{ID: "admin1", Role: domain.RoleAdmin}
	s.SetUser(ctx, u)
	u.ID = "mutated"
	if got := s.User(); got == nil || got.ID != "admin1" {
		t.Fatalf("session aliased caller value: %+v", got)
	}
	s.Logout(ctx)
	if s.User() != nil {
		t.Fatalf("expected logout")
	}
	if len(p.users) != 2 || p.users[1] != nil {
		t.Fatalf("expected user then null written, got %+v", p.users)
	}

	st := s.Settings()
	st.StoreName = "Outra"
	s.SaveSettings(ctx, st)
	if s.Settings().StoreName != "Outra" || len(p.settings) != 1 {
		t.Fatalf("settings not saved")
	}
}

func TestGettersReturnCopies(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	products := s.Products()
	products[0].Name = "changed"
	if got, _ := s.Product("101"); got.Name == "changed" {
		t.Fatalf("Products aliased internal state")
	}

	_, _ = s.AddToCart("101")
	order, _ := s.PlaceOrder(ctx, domain.PaymentPIX)
	order.Items[0].Quantity = 99
	orders := s.Orders()
	orders[0].Items[0].Quantity = 42
	if s.Orders()[0].Items[0].Quantity != 1 {
		t.Fatalf("order items aliased internal state")
	}
}
