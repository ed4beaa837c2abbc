package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"crm-graphql/internal/crm"
)

type OrderRepo struct{ DB *pgxpool.Pool }

var _ crm.OrderStore = (*OrderRepo)(nil)

const orderCols = `id, seller_id, client_id, items, total, status, created_at, updated_at`

func (r *OrderRepo) Insert(ctx context.Context, o *crm.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO orders(id, seller_id, client_id, items, total, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		o.ID, o.SellerID, o.ClientID, items, o.Total, o.Status, o.CreatedAt, o.UpdatedAt)
	return wrap("insert order", err)
}

func (r *OrderRepo) ByID(ctx context.Context, id string) (*crm.Order, error) {
	o := &crm.Order{}
	var items []byte
	err := r.DB.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.SellerID, &o.ClientID, &items, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, wrap("get order", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepo) All(ctx context.Context) ([]crm.Order, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC`)
}

func (r *OrderRepo) BySeller(ctx context.Context, sellerID string) ([]crm.Order, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM orders WHERE seller_id=$1 ORDER BY created_at DESC`, sellerID)
}

func (r *OrderRepo) BySellerAndStatus(ctx context.Context, sellerID string, status crm.Status) ([]crm.Order, error) {
	return r.list(ctx, `SELECT `+orderCols+` FROM orders WHERE seller_id=$1 AND status=$2 ORDER BY created_at DESC`,
		sellerID, status)
}

func (r *OrderRepo) list(ctx context.Context, q string, args ...any) ([]crm.Order, error) {
	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, wrap("list orders", err)
	}
	defer rows.Close()

	var out []crm.Order
	for rows.Next() {
		var o crm.Order
		var items []byte
		if err := rows.Scan(&o.ID, &o.SellerID, &o.ClientID, &items, &o.Total, &o.Status,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, wrap("list orders", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, wrap("list orders", rows.Err())
}

func (r *OrderRepo) Update(ctx context.Context, o *crm.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	ct, err := r.DB.Exec(ctx, `
		UPDATE orders SET seller_id=$2, client_id=$3, items=$4, total=$5, status=$6, updated_at=$7
		WHERE id=$1`,
		o.ID, o.SellerID, o.ClientID, items, o.Total, o.Status, o.UpdatedAt)
	if err != nil {
		return wrap("update order", err)
	}
	if ct.RowsAffected() == 0 {
		return crm.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return wrap("delete order", err)
	}
	if ct.RowsAffected() == 0 {
		return crm.ErrNotFound
	}
	return nil
}

// CompletedTotalsByClient groups completed orders by client and joins
// the client row; unsorted, the service ranks and limits.
func (r *OrderRepo) CompletedTotalsByClient(ctx context.Context) ([]crm.ClientTotal, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT c.id, c.name, c.surname, c.company, c.email, c.phone, c.seller_id,
		       c.created_at, c.updated_at, SUM(o.total)
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status = $1
		GROUP BY c.id`, crm.StatusCompleted)
	if err != nil {
		return nil, wrap("top clients", err)
	}
	defer rows.Close()

	var out []crm.ClientTotal
	for rows.Next() {
		var t crm.ClientTotal
		c := &t.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone,
			&c.SellerID, &c.CreatedAt, &c.UpdatedAt, &t.Total); err != nil {
			return nil, wrap("top clients", err)
		}
		out = append(out, t)
	}
	return out, wrap("top clients", rows.Err())
}

func (r *OrderRepo) CompletedTotalsBySeller(ctx context.Context) ([]crm.SellerTotal, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT u.id, u.name, u.surname, u.email, u.created_at, u.updated_at, SUM(o.total)
		FROM orders o
		JOIN users u ON u.id = o.seller_id
		WHERE o.status = $1
		GROUP BY u.id`, crm.StatusCompleted)
	if err != nil {
		return nil, wrap("top sellers", err)
	}
	defer rows.Close()

	var out []crm.SellerTotal
	for rows.Next() {
		var t crm.SellerTotal
		u := &t.Seller
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Email,
			&u.CreatedAt, &u.UpdatedAt, &t.Total); err != nil {
			return nil, wrap("top sellers", err)
		}
		out = append(out, t)
	}
	return out, wrap("top sellers", rows.Err())
}
