// Package store is the single authoritative state container for the shop:
// catalog, cart, orders, settings, session user and admin credentials.
//
// Every mutation runs to completion under one lock before the next starts.
// All collections except the cart are written to the Persister after each
// mutation; the cart lives only in memory.
package store

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"zapstore/internal/domain"
	"zapstore/internal/persist"

	"github.com/google/uuid"
)

// Persister receives the state after each mutation. Implementations swallow
// their own failures.
type Persister interface {
	SaveProducts(ctx context.Context, products []domain.Product)
	SaveCategories(ctx context.Context, categories []domain.Category)
	SaveSettings(ctx context.Context, settings domain.Settings)
	SaveUser(ctx context.Context, user *domain.User)
	SaveOrders(ctx context.Context, orders []domain.Order)
	SaveAdminCredentials(ctx context.Context, creds domain.AdminCredentials)
	SaveOrderPlacement(ctx context.Context, products []domain.Product, orders []domain.Order)
	ClearAdminCredentials(ctx context.Context)
}

// Publisher is notified about order lifecycle changes after they are applied.
type Publisher interface {
	OrderPlaced(ctx context.Context, order domain.Order) error
	OrderStatusChanged(ctx context.Context, order domain.Order) error
}

type Store struct {
	mu sync.RWMutex

	products   []domain.Product
	categories []domain.Category
	settings   domain.Settings
	user       *domain.User
	cart       []domain.CartItem
	orders     []domain.Order
	creds      domain.AdminCredentials

	persist Persister
	events  Publisher
	logger  *log.Logger

	now       func() time.Time
	newID     func() string
	orderCode func() (string, error)
}

type Option func(*Store)

// WithClock overrides the time source used for order timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how ids are assigned to new products and categories.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithOrderCodeGenerator overrides the short order code source.
func WithOrderCodeGenerator(gen func() (string, error)) Option {
	return func(s *Store) { s.orderCode = gen }
}

// New builds a store from a loaded snapshot. A nil publisher disables events.
func New(snap persist.Snapshot, p Persister, events Publisher, logger *log.Logger, opts ...Option) *Store {
	s := &Store{
		products:   slices.Clone(snap.Products),
		categories: slices.Clone(snap.Categories),
		settings:   snap.Settings,
		user:       cloneUser(snap.User),
		cart:       []domain.CartItem{},
		orders:     cloneOrders(snap.Orders),
		creds:      snap.AdminCredentials,
		persist:    p,
		events:     events,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
		orderCode:  randomOrderCode,
	}
	if s.products == nil {
		s.products = []domain.Product{}
	}
	if s.categories == nil {
		s.categories = []domain.Category{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Product returns the live catalog entry for id.
func (s *Store) Product(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.productIndex(id); i >= 0 {
		return s.products[i], nil
	}
	return domain.Product{}, domain.ErrNotFound
}

// Categories returns categories ordered by their display rank.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	out := slices.Clone(s.categories)
	s.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b domain.Category) int { return a.Order - b.Order })
	return out
}

func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// User returns the session user, or nil when nobody is logged in.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

func (s *Store) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cart)
}

// Orders returns orders newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

func (s *Store) AdminCredentials() domain.AdminCredentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

func (s *Store) productIndex(id string) int {
	return slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == id })
}

func (s *Store) categoryIndex(id string) int {
	return slices.IndexFunc(s.categories, func(c domain.Category) bool { return c.ID == id })
}

func (s *Store) cartIndex(productID string) int {
	return slices.IndexFunc(s.cart, func(it domain.CartItem) bool { return it.ID == productID })
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func cloneOrders(in []domain.Order) []domain.Order {
	out := make([]domain.Order, len(in))
	for i, o := range in {
		o.Items = slices.Clone(o.Items)
		out[i] = o
	}
	return out
}
