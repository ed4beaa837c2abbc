package crm

import "time"

// User is a seller: the identity that owns clients and orders.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is not scoped to a seller; stock is mutated both by direct
// CRUD and by order reservations.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is embedded in Order, never persisted on its own.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID        string      `json:"id"`
	SellerID  string      `json:"seller_id"`
	ClientID  string      `json:"client_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ClientTotal is a ranking row: a client joined with the summed total of
// its completed orders.
type ClientTotal struct {
	Client Client  `json:"client"`
	Total  float64 `json:"total"`
}

// SellerTotal mirrors ClientTotal for the top-sellers ranking.
type SellerTotal struct {
	Seller User    `json:"seller"`
	Total  float64 `json:"total"`
}
