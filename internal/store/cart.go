package store

import (
	"zapstore/internal/domain"
)

// AddToCart adds one unit of the product. It is refused with a notice when
// the product is sold out or the line already holds the whole stock.
func (s *Store) AddToCart(productID string) (*domain.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.productIndex(productID)
	if pi < 0 {
		return nil, domain.ErrNotFound
	}
	product := s.products[pi]
	if !product.InStock() {
		return domain.OutOfStockNotice(), nil
	}

	if ci := s.cartIndex(productID); ci >= 0 {
		if s.cart[ci].Quantity >= product.Stock {
			return domain.StockLimitNotice(), nil
		}
		s.cart[ci].Quantity++
		return nil, nil
	}
	s.cart = append(s.cart, domain.CartItem{Product: product, Quantity: 1})
	return nil, nil
}

// UpdateCartQuantity moves a line's quantity by delta, never below 1. Going
// above the live stock is refused. Lines whose product was deleted are only
// floored.
func (s *Store) UpdateCartQuantity(productID string, delta int) (*domain.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.cartIndex(productID)
	if ci < 0 {
		return nil, domain.ErrNotFound
	}
	qty := max(1, s.cart[ci].Quantity+delta)
	if pi := s.productIndex(productID); pi >= 0 && qty > s.products[pi].Stock {
		return domain.StockLimitNotice(), nil
	}
	s.cart[ci].Quantity = qty
	return nil, nil
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.cartIndex(productID); i >= 0 {
		s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []domain.CartItem{}
}
