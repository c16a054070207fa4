// Package persist maps store collections onto named JSON slots.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"zapstore/internal/domain"
	"zapstore/internal/repository/slot"
)

// Slot names. The cart is never persisted.
const (
	KeyProducts   = "zap_products"
	KeyCategories = "zap_categories"
	KeySettings   = "zap_settings"
	KeyUser       = "zap_user"
	KeyOrders     = "zap_orders"
	KeyAdminCreds = "zap_admin_creds"
)

// Snapshot is the persisted part of the store state.
type Snapshot struct {
	Products         []domain.Product
	Categories       []domain.Category
	Settings         domain.Settings
	User             *domain.User
	Orders           []domain.Order
	AdminCredentials domain.AdminCredentials
}

// Defaults is the state of a store that has never been written.
func Defaults() Snapshot {
	return Snapshot{
		Products:         domain.DefaultProducts(),
		Categories:       domain.DefaultCategories(),
		Settings:         domain.DefaultSettings(),
		Orders:           []domain.Order{},
		AdminCredentials: domain.DefaultAdminCredentials(),
	}
}

type Persister struct {
	repo   slot.Repository
	logger *log.Logger
}

func New(repo slot.Repository, logger *log.Logger) *Persister {
	return &Persister{repo: repo, logger: logger}
}

// Load reads every slot. Missing or malformed slots fall back to Defaults and
// are never reported as errors.
func (p *Persister) Load(ctx context.Context) Snapshot {
	snap := Defaults()

	var products []domain.Product
	if p.read(ctx, KeyProducts, &products) && products != nil {
		snap.Products = products
	}
	var categories []domain.Category
	if p.read(ctx, KeyCategories, &categories) && categories != nil {
		snap.Categories = categories
	}
	var settings domain.Settings
	if p.read(ctx, KeySettings, &settings) {
		snap.Settings = settings
	}
	var user *domain.User
	if p.read(ctx, KeyUser, &user) {
		snap.User = user
	}
	var orders []domain.Order
	if p.read(ctx, KeyOrders, &orders) && orders != nil {
		snap.Orders = orders
	}
	var creds domain.AdminCredentials
	if p.read(ctx, KeyAdminCreds, &creds) && creds.Email != "" {
		snap.AdminCredentials = creds
	}
	return snap
}

func (p *Persister) read(ctx context.Context, key string, dst any) bool {
	raw, err := p.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			p.logger.Printf("read slot %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		p.logger.Printf("slot %s is malformed, using defaults: %v", key, err)
		return false
	}
	return true
}

func (p *Persister) SaveProducts(ctx context.Context, products []domain.Product) {
	p.write(ctx, KeyProducts, products)
}

func (p *Persister) SaveCategories(ctx context.Context, categories []domain.Category) {
	p.write(ctx, KeyCategories, categories)
}

func (p *Persister) SaveSettings(ctx context.Context, settings domain.Settings) {
	p.write(ctx, KeySettings, settings)
}

// SaveUser writes null for a nil user, which Load reads back as no session.
func (p *Persister) SaveUser(ctx context.Context, user *domain.User) {
	p.write(ctx, KeyUser, user)
}

func (p *Persister) SaveOrders(ctx context.Context, orders []domain.Order) {
	p.write(ctx, KeyOrders, orders)
}

func (p *Persister) SaveAdminCredentials(ctx context.Context, creds domain.AdminCredentials) {
	p.write(ctx, KeyAdminCreds, creds)
}

// SaveOrderPlacement writes the decremented catalog and the new order list together.
func (p *Persister) SaveOrderPlacement(ctx context.Context, products []domain.Product, orders []domain.Order) {
	values := make(map[string][]byte, 2)
	for key, v := range map[string]any{KeyProducts: products, KeyOrders: orders} {
		b, err := json.Marshal(v)
		if err != nil {
			p.logger.Printf("encode slot %s: %v", key, err)
			return
		}
		values[key] = b
	}
	if err := p.repo.SetMany(ctx, values); err != nil {
		p.logger.Printf("write order placement: %v", err)
	}
}

// ClearAdminCredentials removes the override so the next Load uses the defaults.
func (p *Persister) ClearAdminCredentials(ctx context.Context) {
	if err := p.repo.Delete(ctx, KeyAdminCreds); err != nil {
		p.logger.Printf("delete slot %s: %v", KeyAdminCreds, err)
	}
}

func (p *Persister) write(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		p.logger.Printf("encode slot %s: %v", key, err)
		return
	}
	if err := p.repo.Set(ctx, key, b); err != nil {
		p.logger.Printf("write slot %s: %v", key, err)
	}
}
