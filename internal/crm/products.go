package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

type UpdateProductInput struct {
	Name  *string  `json:"name"`
	Stock *int     `json:"stock"`
	Price *float64 `json:"price"`
}

// searchLimit caps full-text product search results.
const searchLimit = 3

func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error) {
	now := time.Now().UTC()
	p := &Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Stock:     in.Stock,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Products.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.Products.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product: %w", err)
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.Products.All(ctx)
}

func (s *Service) SearchProducts(ctx context.Context, text string) ([]Product, error) {
	return s.Products.Search(ctx, text, searchLimit)
}

// UpdateProduct applies a partial update; unset fields keep their
// stored value.
func (s *Service) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*Product, error) {
	p, err := s.Products.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product: %w", err)
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.Products.ByID(ctx, id); err != nil {
		return fmt.Errorf("product: %w", err)
	}
	return s.Products.Delete(ctx, id)
}
