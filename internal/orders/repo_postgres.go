package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgRepo struct{ DB *pgxpool.Pool }

// price travels as text both ways so NUMERIC digits are never rounded
// through a float.
const pgColumns = `id, user_id, product, quantity, price::text, created_at, updated_at`

func (r *PgRepo) FindByID(ctx context.Context, id int64) (Order, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+pgColumns+` FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *PgRepo) FindAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `SELECT `+pgColumns+` FROM orders ORDER BY id`)
}

func (r *PgRepo) FindByUserID(ctx context.Context, userID int64) ([]Order, error) {
	return r.list(ctx, `SELECT `+pgColumns+` FROM orders WHERE user_id=$1 ORDER BY id`, userID)
}

func (r *PgRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

func (r *PgRepo) Save(ctx context.Context, o *Order) error {
	if o.ID == 0 {
		return r.DB.QueryRow(ctx, `
			INSERT INTO orders(user_id, product, quantity, price)
			VALUES ($1, $2, $3, $4::numeric)
			RETURNING id, created_at, updated_at`,
			o.UserID, o.Product, o.Quantity, o.Price.String(),
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	}
	err := r.DB.QueryRow(ctx, `
		UPDATE orders SET user_id=$2, product=$3, quantity=$4, price=$5::numeric, updated_at=now()
		WHERE id=$1
		RETURNING created_at, updated_at`,
		o.ID, o.UserID, o.Product, o.Quantity, o.Price.String(),
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PgRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgRepo) list(ctx context.Context, q string, args ...any) ([]Order, error) {
	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (Order, error) {
	var (
		o     Order
		price string
	)
	if err := s.Scan(&o.ID, &o.UserID, &o.Product, &o.Quantity, &price, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return Order{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return Order{}, fmt.Errorf("order %d: bad price %q: %w", o.ID, price, err)
	}
	o.Price = d
	return o, nil
}
