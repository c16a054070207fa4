package store

import (
	"context"
	"slices"

	"zapstore/internal/domain"
)

// PlaceOrder turns the cart into a pending order. Stock decrement, order
// creation and cart clearing are applied as one state swap.
func (s *Store) PlaceOrder(ctx context.Context, method domain.PaymentMethod) (domain.Order, error) {
	if !method.Valid() {
		return domain.Order{}, domain.ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return domain.Order{}, domain.ErrEmptyCart
	}

	items := slices.Clone(s.cart)
	order := domain.Order{
		ID:            s.nextOrderID(),
		ClientID:      domain.GuestID,
		ClientName:    domain.GuestName,
		Items:         items,
		Total:         domain.CartTotal(items),
		Status:        domain.OrderPending,
		CreatedAt:     s.now().UTC(),
		PaymentMethod: method,
	}
	if s.user != nil {
		if s.user.ID != "" {
			order.ClientID = s.user.ID
		}
		if s.user.Name != "" {
			order.ClientName = s.user.Name
		}
	}

	products := slices.Clone(s.products)
	for _, it := range items {
		for i := range products {
			if products[i].ID == it.ID {
				products[i].Stock = max(0, products[i].Stock-it.Quantity)
			}
		}
	}
	orders := append([]domain.Order{order}, s.orders...)

	s.products, s.orders, s.cart = products, orders, []domain.CartItem{}
	s.persist.SaveOrderPlacement(ctx, s.products, s.orders)
	s.mu.Unlock()

	if s.events != nil {
		if err := s.events.OrderPlaced(ctx, order); err != nil {
			s.logger.Printf("publish order placed %s: %v", order.ID, err)
		}
	}
	return cloneOrders([]domain.Order{order})[0], nil
}

// UpdateOrderStatus sets the status of an order. Any known status may follow
// any other. It reports whether the order exists.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.orders, func(o domain.Order) bool { return o.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.orders[i].Status = status
	changed := cloneOrders(s.orders[i : i+1])[0]
	s.persist.SaveOrders(ctx, s.orders)
	s.mu.Unlock()

	if s.events != nil {
		if err := s.events.OrderStatusChanged(ctx, changed); err != nil {
			s.logger.Printf("publish status change %s: %v", id, err)
		}
	}
	return true, nil
}

// nextOrderID draws short codes until one is unused. Callers hold s.mu.
func (s *Store) nextOrderID() string {
	for attempt := 0; attempt < maxOrderCodeAttempts; attempt++ {
		code, err := s.orderCode()
		if err != nil {
			s.logger.Printf("order code: %v", err)
			continue
		}
		if !slices.ContainsFunc(s.orders, func(o domain.Order) bool { return o.ID == code }) {
			return code
		}
	}
	return s.newID()
}
