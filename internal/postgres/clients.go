package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-graphql/internal/crm"
)

type ClientRepo struct{ DB *pgxpool.Pool }

var _ crm.ClientStore = (*ClientRepo)(nil)

const clientCols = `id, name, surname, company, email, phone, seller_id, created_at, updated_at`

func scanClient(row pgx.Row, c *crm.Client) error {
	return row.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone,
		&c.SellerID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ClientRepo) Insert(ctx context.Context, c *crm.Client) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO clients(id, name, surname, company, email, phone, seller_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.Name, c.Surname, c.Company, c.Email, c.Phone, c.SellerID, c.CreatedAt, c.UpdatedAt)
	return wrap("insert client", err)
}

func (r *ClientRepo) ByID(ctx context.Context, id string) (*crm.Client, error) {
	c := &crm.Client{}
	err := scanClient(r.DB.QueryRow(ctx, `SELECT `+clientCols+` FROM clients WHERE id=$1`, id), c)
	if err != nil {
		return nil, wrap("get client", err)
	}
	return c, nil
}

func (r *ClientRepo) ByEmail(ctx context.Context, email string) (*crm.Client, error) {
	c := &crm.Client{}
	err := scanClient(r.DB.QueryRow(ctx, `SELECT `+clientCols+` FROM clients WHERE email=$1`, email), c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get client by email", err)
	}
	return c, nil
}

func (r *ClientRepo) All(ctx context.Context) ([]crm.Client, error) {
	return r.list(ctx, `SELECT `+clientCols+` FROM clients ORDER BY name`)
}

func (r *ClientRepo) BySeller(ctx context.Context, sellerID string) ([]crm.Client, error) {
	return r.list(ctx, `SELECT `+clientCols+` FROM clients WHERE seller_id=$1 ORDER BY name`, sellerID)
}

func (r *ClientRepo) list(ctx context.Context, q string, args ...any) ([]crm.Client, error) {
	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, wrap("list clients", err)
	}
	defer rows.Close()

	var out []crm.Client
	for rows.Next() {
		var c crm.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, wrap("list clients", err)
		}
		out = append(out, c)
	}
	return out, wrap("list clients", rows.Err())
}

func (r *ClientRepo) Update(ctx context.Context, c *crm.Client) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE clients SET name=$2, surname=$3, company=$4, email=$5, phone=$6, updated_at=$7
		WHERE id=$1`,
		c.ID, c.Name, c.Surname, c.Company, c.Email, c.Phone, c.UpdatedAt)
	if err != nil {
		return wrap("update client", err)
	}
	if ct.RowsAffected() == 0 {
		return crm.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return wrap("delete client", err)
	}
	if ct.RowsAffected() == 0 {
		return crm.ErrNotFound
	}
	return nil
}
