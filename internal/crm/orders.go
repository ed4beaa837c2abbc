package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderInput struct {
	ClientID string           `json:"client_id"`
	Items    []OrderItemInput `json:"items"`
	Total    float64          `json:"total"`
	Status   *Status          `json:"status"`
}

type UpdateOrderInput struct {
	ClientID *string          `json:"client_id"`
	Items    []OrderItemInput `json:"items"` // nil leaves items and stock untouched
	Total    *float64         `json:"total"`
	Status   *Status          `json:"status"`
}

// CreateOrder validates that the referenced client belongs to the
// caller, reserves stock for every line item, then persists the order.
// The order document is only written after all reservations pass.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	client, err := s.Clients.ByID(ctx, in.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	if client.SellerID != caller.ID {
		return nil, fmt.Errorf("client %s: %w", in.ClientID, ErrForbidden)
	}

	items, err := s.reserveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if in.Status != nil {
		status = *in.Status
	}
	now := time.Now().UTC()
	o := &Order{
		ID:        uuid.NewString(),
		SellerID:  caller.ID,
		ClientID:  in.ClientID,
		Items:     items,
		Total:     in.Total,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Orders.Insert(ctx, o); err != nil {
		return nil, err
	}
	s.publishOrderEvent(EventOrderCreated, o)
	return o, nil
}

// GetOrder is readable only by the owning seller.
func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	o, err := s.Orders.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}
	if o.SellerID != caller.ID {
		return nil, fmt.Errorf("order %s: %w", id, ErrForbidden)
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.Orders.All(ctx)
}

func (s *Service) ListSellerOrders(ctx context.Context) ([]Order, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	return s.Orders.BySeller(ctx, caller.ID)
}

func (s *Service) ListSellerOrdersByStatus(ctx context.Context, status Status) ([]Order, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return s.Orders.BySellerAndStatus(ctx, caller.ID, status)
}

// UpdateOrder re-runs the existence and ownership checks, then applies a
// partial update. A revised item list goes through stock reservation
// against current stock; the original reservation is not released first,
// so edits consume stock additively (kept for contract compatibility,
// see DESIGN.md).
func (s *Service) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (*Order, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	o, err := s.Orders.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}
	if o.SellerID != caller.ID {
		return nil, fmt.Errorf("order %s: %w", id, ErrForbidden)
	}

	if in.ClientID != nil {
		client, err := s.Clients.ByID(ctx, *in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("client: %w", err)
		}
		if client.SellerID != caller.ID {
			return nil, fmt.Errorf("client %s: %w", *in.ClientID, ErrForbidden)
		}
		o.ClientID = *in.ClientID
	}

	if in.Items != nil {
		items, err := s.reserveItems(ctx, in.Items)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	if in.Total != nil {
		o.Total = *in.Total
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("unknown order status %q", *in.Status)
		}
		o.Status = *in.Status
	}
	o.UpdatedAt = time.Now().UTC()
	if err := s.Orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.publishOrderEvent(EventOrderUpdated, o)
	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Orders.Delete(ctx, id); err != nil {
		return err
	}
	s.publishOrderEvent(EventOrderDeleted, o)
	return nil
}
