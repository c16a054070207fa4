// Package seed writes an initial catalog into the slot store.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"zapstore/internal/domain"
	"zapstore/internal/persist"
	"zapstore/internal/repository/slot"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type productSeed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
	CategoryID  string `yaml:"categoryId"`
	Active      *bool  `yaml:"active"`
	Order       int    `yaml:"order"`
	Stock       int    `yaml:"stock"`
}

type categorySeed struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

type settingsSeed struct {
	StoreName       string `yaml:"storeName"`
	WhatsappNumber  string `yaml:"whatsappNumber"`
	PixKey          string `yaml:"pixKey"`
	PixInstructions string `yaml:"pixInstructions"`
	MaxInstallments int    `yaml:"maxInstallments"`
}

// File is the YAML layout accepted by cmd/seed. Omitted settings keep their defaults.
type File struct {
	Settings   *settingsSeed  `yaml:"settings"`
	Categories []categorySeed `yaml:"categories"`
	Products   []productSeed  `yaml:"products"`
}

// Catalog is what Apply writes.
type Catalog struct {
	Settings   domain.Settings
	Categories []domain.Category
	Products   []domain.Product
}

// Default is the catalog a fresh store starts with.
func Default() Catalog {
	d := persist.Defaults()
	return Catalog{Settings: d.Settings, Categories: d.Categories, Products: d.Products}
}

// Parse reads a YAML seed file.
func Parse(r io.Reader) (Catalog, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return Catalog{}, fmt.Errorf("decode seed: %w", err)
	}

	out := Default()
	if s := f.Settings; s != nil {
		if s.StoreName != "" {
			out.Settings.StoreName = s.StoreName
		}
		if s.WhatsappNumber != "" {
			out.Settings.WhatsappNumber = s.WhatsappNumber
		}
		if s.PixKey != "" {
			out.Settings.PixKey = s.PixKey
		}
		if s.PixInstructions != "" {
			out.Settings.PixInstructions = s.PixInstructions
		}
		if s.MaxInstallments > 0 {
			out.Settings.MaxInstallments = s.MaxInstallments
		}
	}

	if f.Categories != nil {
		out.Categories = make([]domain.Category, 0, len(f.Categories))
		for _, c := range f.Categories {
			if c.ID == "" || c.Name == "" {
				return Catalog{}, fmt.Errorf("category %q: id and name are required", c.ID)
			}
			out.Categories = append(out.Categories, domain.Category{ID: c.ID, Name: c.Name, Order: c.Order})
		}
	}

	if f.Products != nil {
		out.Products = make([]domain.Product, 0, len(f.Products))
		for _, p := range f.Products {
			price, err := decimal.NewFromString(p.Price)
			if err != nil {
				return Catalog{}, fmt.Errorf("product %q: invalid price %q", p.ID, p.Price)
			}
			if p.ID == "" || p.Name == "" {
				return Catalog{}, fmt.Errorf("product %q: id and name are required", p.ID)
			}
			if price.IsNegative() || p.Stock < 0 {
				return Catalog{}, fmt.Errorf("product %q: price and stock must not be negative", p.ID)
			}
			active := true
			if p.Active != nil {
				active = *p.Active
			}
			out.Products = append(out.Products, domain.Product{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       price,
				Image:       p.Image,
				CategoryID:  p.CategoryID,
				Active:      active,
				Order:       p.Order,
				Stock:       p.Stock,
			})
		}
	}
	return out, nil
}

// Apply overwrites the catalog slots in one write. Orders, session and
// credentials are left alone, so running it twice is harmless.
func Apply(ctx context.Context, repo slot.Repository, cat Catalog) error {
	values := map[string][]byte{}
	for key, v := range map[string]any{
		persist.KeySettings:   cat.Settings,
		persist.KeyCategories: cat.Categories,
		persist.KeyProducts:   cat.Products,
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		values[key] = b
	}
	if err := repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
