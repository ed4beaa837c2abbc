package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-graphql/internal/crm"
)

type UserRepo struct{ DB *pgxpool.Pool }

var _ crm.UserStore = (*UserRepo)(nil)

func (r *UserRepo) Insert(ctx context.Context, u *crm.User) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO users(id, name, surname, email, password, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, u.Name, u.Surname, u.Email, u.Password, u.CreatedAt, u.UpdatedAt)
	return wrap("insert user", err)
}

func (r *UserRepo) ByID(ctx context.Context, id string) (*crm.User, error) {
	u := &crm.User{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, surname, email, password, created_at, updated_at
		FROM users WHERE id=$1`, id).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrap("get user", err)
	}
	return u, nil
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*crm.User, error) {
	u := &crm.User{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, surname, email, password, created_at, updated_at
		FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get user by email", err)
	}
	return u, nil
}
