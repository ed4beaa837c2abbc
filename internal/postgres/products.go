package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"crm-graphql/internal/crm"
)

type ProductRepo struct{ DB *pgxpool.Pool }

var _ crm.ProductStore = (*ProductRepo)(nil)

const productCols = `id, name, stock, price, created_at, updated_at`

func (r *ProductRepo) Insert(ctx context.Context, p *crm.Product) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO products(id, name, stock, price, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Name, p.Stock, p.Price, p.CreatedAt, p.UpdatedAt)
	return wrap("insert product", err)
}

func (r *ProductRepo) ByID(ctx context.Context, id string) (*crm.Product, error) {
	p := &crm.Product{}
	err := r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, wrap("get product", err)
	}
	return p, nil
}

func (r *ProductRepo) All(ctx context.Context) ([]crm.Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY name`)
	if err != nil {
		return nil, wrap("list products", err)
	}
	defer rows.Close()

	var out []crm.Product
	for rows.Next() {
		var p crm.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, wrap("list products", err)
		}
		out = append(out, p)
	}
	return out, wrap("list products", rows.Err())
}

func (r *ProductRepo) Search(ctx context.Context, text string, limit int) ([]crm.Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT `+productCols+` FROM products
		WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)
		LIMIT $2`, text, limit)
	if err != nil {
		return nil, wrap("search products", err)
	}
	defer rows.Close()

	var out []crm.Product
	for rows.Next() {
		var p crm.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, wrap("search products", err)
		}
		out = append(out, p)
	}
	return out, wrap("search products", rows.Err())
}

func (r *ProductRepo) Update(ctx context.Context, p *crm.Product) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE products SET name=$2, stock=$3, price=$4, updated_at=$5 WHERE id=$1`,
		p.ID, p.Name, p.Stock, p.Price, p.UpdatedAt)
	if err != nil {
		return wrap("update product", err)
	}
	if ct.RowsAffected() == 0 {
		return crm.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return wrap("delete product", err)
	}
	if ct.RowsAffected() == 0 {
		return crm.ErrNotFound
	}
	return nil
}

// DecrementStock is the no-oversell primitive: the stock check and the
// subtraction happen in one conditional UPDATE, so concurrent orders
// against the same product cannot both pass.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`, id, qty)
	if err != nil {
		return false, wrap("decrement stock", err)
	}
	return ct.RowsAffected() == 1, nil
}
