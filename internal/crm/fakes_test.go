package crm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"crm-graphql/internal/auth"
)

// In-memory stores backing the service tests. Methods hand out copies
// so tests cannot mutate stored state through returned pointers.

type memUsers struct{ m map[string]*User }

func newMemUsers() *memUsers { return &memUsers{m: map[string]*User{}} }

func (s *memUsers) Insert(_ context.Context, u *User) error {
	cp := *u
	s.m[u.ID] = &cp
	return nil
}

func (s *memUsers) ByID(_ context.Context, id string) (*User, error) {
	u, ok := s.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUsers) ByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range s.m {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memProducts struct{ m map[string]*Product }

func newMemProducts() *memProducts { return &memProducts{m: map[string]*Product{}} }

func (s *memProducts) Insert(_ context.Context, p *Product) error {
	cp := *p
	s.m[p.ID] = &cp
	return nil
}

func (s *memProducts) ByID(_ context.Context, id string) (*Product, error) {
	p, ok := s.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memProducts) All(_ context.Context) ([]Product, error) {
	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memProducts) Search(_ context.Context, text string, limit int) ([]Product, error) {
	var out []Product
	for _, p := range s.m {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			out = append(out, *p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memProducts) Update(_ context.Context, p *Product) error {
	if _, ok := s.m[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	s.m[p.ID] = &cp
	return nil
}

func (s *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memProducts) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	p, ok := s.m[id]
	if !ok {
		return false, ErrNotFound
	}
	if p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

type memClients struct{ m map[string]*Client }

func newMemClients() *memClients { return &memClients{m: map[string]*Client{}} }

func (s *memClients) Insert(_ context.Context, c *Client) error {
	cp := *c
	s.m[c.ID] = &cp
	return nil
}

func (s *memClients) ByID(_ context.Context, id string) (*Client, error) {
	c, ok := s.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memClients) ByEmail(_ context.Context, email string) (*Client, error) {
	for _, c := range s.m {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memClients) All(_ context.Context) ([]Client, error) {
	out := make([]Client, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, *c)
	}
	return out, nil
}

func (s *memClients) BySeller(_ context.Context, sellerID string) ([]Client, error) {
	var out []Client
	for _, c := range s.m {
		if c.SellerID == sellerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *memClients) Update(_ context.Context, c *Client) error {
	if _, ok := s.m[c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	s.m[c.ID] = &cp
	return nil
}

func (s *memClients) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return ErrNotFound
	}
	delete(s.m, id)
	return nil
}

type memOrders struct {
	m       map[string]*Order
	users   *memUsers
	clients *memClients
}

func newMemOrders(users *memUsers, clients *memClients) *memOrders {
	return &memOrders{m: map[string]*Order{}, users: users, clients: clients}
}

func (s *memOrders) Insert(_ context.Context, o *Order) error {
	cp := *o
	s.m[o.ID] = &cp
	return nil
}

func (s *memOrders) ByID(_ context.Context, id string) (*Order, error) {
	o, ok := s.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *memOrders) All(_ context.Context) ([]Order, error) {
	out := make([]Order, 0, len(s.m))
	for _, o := range s.m {
		out = append(out, *o)
	}
	return out, nil
}

func (s *memOrders) BySeller(_ context.Context, sellerID string) ([]Order, error) {
	var out []Order
	for _, o := range s.m {
		if o.SellerID == sellerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *memOrders) BySellerAndStatus(_ context.Context, sellerID string, status Status) ([]Order, error) {
	var out []Order
	for _, o := range s.m {
		if o.SellerID == sellerID && o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *memOrders) Update(_ context.Context, o *Order) error {
	if _, ok := s.m[o.ID]; !ok {
		return ErrNotFound
	}
	cp := *o
	s.m[o.ID] = &cp
	return nil
}

func (s *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memOrders) CompletedTotalsByClient(_ context.Context) ([]ClientTotal, error) {
	sums := map[string]float64{}
	for _, o := range s.m {
		if o.Status == StatusCompleted {
			sums[o.ClientID] += o.Total
		}
	}
	var out []ClientTotal
	for id, total := range sums {
		c := s.clients.m[id]
		out = append(out, ClientTotal{Client: *c, Total: total})
	}
	return out, nil
}

func (s *memOrders) CompletedTotalsBySeller(_ context.Context) ([]SellerTotal, error) {
	sums := map[string]float64{}
	for _, o := range s.m {
		if o.Status == StatusCompleted {
			sums[o.SellerID] += o.Total
		}
	}
	var out []SellerTotal
	for id, total := range sums {
		u := s.users.m[id]
		out = append(out, SellerTotal{Seller: *u, Total: total})
	}
	return out, nil
}

type fixture struct {
	svc      *Service
	users    *memUsers
	products *memProducts
	clients  *memClients
	orders   *memOrders
}

func newFixture() *fixture {
	users := newMemUsers()
	products := newMemProducts()
	clients := newMemClients()
	orders := newMemOrders(users, clients)
	svc := &Service{
		Users:       users,
		Products:    products,
		Clients:     clients,
		Orders:      orders,
		Tokens:      auth.NewTokens("test-secret", time.Hour),
		Log:         zap.NewNop(),
		ServiceName: "crm-test",
	}
	return &fixture{svc: svc, users: users, products: products, clients: clients, orders: orders}
}

func asSeller(id string) context.Context {
	return auth.WithCaller(context.Background(), &auth.Claims{ID: id, Email: id + "@example.com"})
}
