package orders

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLiteRepo stores price as TEXT holding the exact decimal string.
type SQLiteRepo struct{ DB *sql.DB }

const sqliteColumns = `id, user_id, product, quantity, price, created_at, updated_at`

func (r *SQLiteRepo) FindByID(ctx context.Context, id int64) (Order, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM orders WHERE id=?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *SQLiteRepo) FindAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `SELECT `+sqliteColumns+` FROM orders ORDER BY id`)
}

func (r *SQLiteRepo) FindByUserID(ctx context.Context, userID int64) ([]Order, error) {
	return r.list(ctx, `SELECT `+sqliteColumns+` FROM orders WHERE user_id=? ORDER BY id`, userID)
}

func (r *SQLiteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=?)`, id).Scan(&ok)
	return ok, err
}

func (r *SQLiteRepo) Save(ctx context.Context, o *Order) error {
	now := time.Now().UTC()
	if o.ID == 0 {
		res, err := r.DB.ExecContext(ctx, `
			INSERT INTO orders(user_id, product, quantity, price, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			o.UserID, o.Product, o.Quantity, o.Price.String(), now, now)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		o.ID, o.CreatedAt, o.UpdatedAt = id, now, now
		return nil
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET user_id=?, product=?, quantity=?, price=?, updated_at=?
		WHERE id=?`,
		o.UserID, o.Product, o.Quantity, o.Price.String(), now, o.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	o.UpdatedAt = now
	return r.DB.QueryRowContext(ctx, `SELECT created_at FROM orders WHERE id=?`, o.ID).Scan(&o.CreatedAt)
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) list(ctx context.Context, q string, args ...any) ([]Order, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
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
