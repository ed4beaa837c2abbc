package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateClientInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type UpdateClientInput struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// CreateClient stamps the caller as the owning seller; ownership never
// changes afterwards.
func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (*Client, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.Clients.ByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("client %s: %w", in.Email, ErrAlreadyExists)
	}

	now := time.Now().UTC()
	c := &Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Surname:   in.Surname,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Clients.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetClient is readable only by the seller who created it.
func (s *Service) GetClient(ctx context.Context, id string) (*Client, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.Clients.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	if c.SellerID != caller.ID {
		return nil, fmt.Errorf("client %s: %w", id, ErrForbidden)
	}
	return c, nil
}

func (s *Service) ListClients(ctx context.Context) ([]Client, error) {
	return s.Clients.All(ctx)
}

func (s *Service) ListSellerClients(ctx context.Context) ([]Client, error) {
	caller, err := s.requireCaller(ctx)
	if err != nil {
		return nil, err
	}
	return s.Clients.BySeller(ctx, caller.ID)
}

func (s *Service) UpdateClient(ctx context.Context, id string, in UpdateClientInput) (*Client, error) {
	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Surname != nil {
		c.Surname = *in.Surname
	}
	if in.Company != nil {
		c.Company = *in.Company
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	c.UpdatedAt = time.Now().UTC()
	if err := s.Clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.Clients.Delete(ctx, id)
}
