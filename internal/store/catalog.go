package store

import (
	"context"

	"zapstore/internal/domain"
)

// SaveProduct replaces the product with the same id or appends it. Price and
// stock are taken as given. An empty id gets a fresh one.
func (s *Store) SaveProduct(ctx context.Context, p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.newID()
	}
	if i := s.productIndex(p.ID); i >= 0 {
		s.products[i] = p
	} else {
		s.products = append(s.products, p)
	}
	s.persist.SaveProducts(ctx, s.products)
	return p
}

// DeleteProduct removes the product. Cart lines and orders keep their snapshots.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.persist.SaveProducts(ctx, s.products)
}

func (s *Store) SaveCategory(ctx context.Context, c domain.Category) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.newID()
	}
	if i := s.categoryIndex(c.ID); i >= 0 {
		s.categories[i] = c
	} else {
		s.categories = append(s.categories, c)
	}
	s.persist.SaveCategories(ctx, s.categories)
	return c
}

// DeleteCategory refuses while any product still points at the category.
func (s *Store) DeleteCategory(ctx context.Context, id string) *domain.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	linked := 0
	for _, p := range s.products {
		if p.CategoryID == id {
			linked++
		}
	}
	if linked > 0 {
		return domain.CategoryInUseNotice(linked)
	}

	i := s.categoryIndex(id)
	if i < 0 {
		return nil
	}
	s.categories = append(s.categories[:i:i], s.categories[i+1:]...)
	s.persist.SaveCategories(ctx, s.categories)
	return nil
}
