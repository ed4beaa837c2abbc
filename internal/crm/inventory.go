package crm

import (
	"context"
	"fmt"
)

// reserveItems walks the line items in input order and decrements stock
// per product with a single conditional write each, so two concurrent
// orders cannot both pass the check and oversell. Reservations commit
// item by item: when item k fails, items 1..k-1 stay decremented and
// the surrounding order mutation fails without persisting the order.
func (s *Service) reserveItems(ctx context.Context, in []OrderItemInput) ([]OrderItem, error) {
	items := make([]OrderItem, 0, len(in))
	for _, it := range in {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", it.Quantity, it.ProductID)
		}
		p, err := s.Products.ByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product: %w", err)
		}
		ok, err := s.Products.DecrementStock(ctx, p.ID, it.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("product %s exceeds the available quantity: %w", p.Name, ErrInsufficientStock)
		}
		items = append(items, OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items, nil
}
