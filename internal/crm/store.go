package crm

import "context"

// Store contracts consumed by the service. The pgx implementations live
// in internal/postgres; tests substitute in-memory fakes.
//
// ByID methods return ErrNotFound when the id has no row. ByEmail
// methods return (nil, nil) when absent so uniqueness preconditions and
// login can distinguish "missing" without error plumbing.

type UserStore interface {
	Insert(ctx context.Context, u *User) error
	ByID(ctx context.Context, id string) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
}

type ProductStore interface {
	Insert(ctx context.Context, p *Product) error
	ByID(ctx context.Context, id string) (*Product, error)
	All(ctx context.Context) ([]Product, error)
	// Search matches the product name full-text index, at most limit rows.
	Search(ctx context.Context, text string, limit int) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts qty only if the resulting stock stays
	// non-negative, in a single conditional write. Returns false when
	// the precondition fails.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
}

type ClientStore interface {
	Insert(ctx context.Context, c *Client) error
	ByID(ctx context.Context, id string) (*Client, error)
	ByEmail(ctx context.Context, email string) (*Client, error)
	All(ctx context.Context) ([]Client, error)
	BySeller(ctx context.Context, sellerID string) ([]Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Insert(ctx context.Context, o *Order) error
	ByID(ctx context.Context, id string) (*Order, error)
	All(ctx context.Context) ([]Order, error)
	BySeller(ctx context.Context, sellerID string) ([]Order, error)
	BySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]Order, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id string) error

	// Grouping queries over completed orders; unsorted, the service
	// applies ordering and limits.
	CompletedTotalsByClient(ctx context.Context) ([]ClientTotal, error)
	CompletedTotalsBySeller(ctx context.Context) ([]SellerTotal, error)
}
