package users

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLiteRepo struct{ DB *sql.DB }

func (r *SQLiteRepo) FindByID(ctx context.Context, id int64) (User, error) {
	return r.one(ctx, `SELECT `+columns+` FROM users WHERE id=?`, id)
}

func (r *SQLiteRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.one(ctx, `SELECT `+columns+` FROM users WHERE username=? ORDER BY id LIMIT 1`, username)
}

func (r *SQLiteRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.one(ctx, `SELECT `+columns+` FROM users WHERE email=? ORDER BY id LIMIT 1`, email)
}

func (r *SQLiteRepo) FindAll(ctx context.Context) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+columns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id=?)`, id).Scan(&ok)
	return ok, err
}

func (r *SQLiteRepo) Save(ctx context.Context, u *User) error {
	now := time.Now().UTC()
	if u.ID == 0 {
		res, err := r.DB.ExecContext(ctx, `
			INSERT INTO users(username, password_hash, email, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			u.Username, u.PasswordHash, u.Email, now, now)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		u.ID, u.CreatedAt, u.UpdatedAt = id, now, now
		return nil
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE users SET username=?, password_hash=?, email=?, updated_at=?
		WHERE id=?`,
		u.Username, u.PasswordHash, u.Email, now, u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	u.UpdatedAt = now
	return r.DB.QueryRowContext(ctx, `SELECT created_at FROM users WHERE id=?`, u.ID).Scan(&u.CreatedAt)
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id=?`, id)
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

func (r *SQLiteRepo) one(ctx context.Context, q string, arg any) (User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}
