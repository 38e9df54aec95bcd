package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepo struct{ DB *pgxpool.Pool }

const columns = `id, username, password_hash, email, created_at, updated_at`

func (r *PgRepo) FindByID(ctx context.Context, id int64) (User, error) {
	return r.one(ctx, `SELECT `+columns+` FROM users WHERE id=$1`, id)
}

func (r *PgRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.one(ctx, `SELECT `+columns+` FROM users WHERE username=$1 ORDER BY id LIMIT 1`, username)
}

func (r *PgRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.one(ctx, `SELECT `+columns+` FROM users WHERE email=$1 ORDER BY id LIMIT 1`, email)
}

func (r *PgRepo) FindAll(ctx context.Context) ([]User, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+columns+` FROM users ORDER BY id`)
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

func (r *PgRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`, id).Scan(&ok)
	return ok, err
}

func (r *PgRepo) Save(ctx context.Context, u *User) error {
	if u.ID == 0 {
		return r.DB.QueryRow(ctx, `
			INSERT INTO users(username, password_hash, email)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`,
			u.Username, u.PasswordHash, u.Email,
		).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	}
	err := r.DB.QueryRow(ctx, `
		UPDATE users SET username=$2, password_hash=$3, email=$4, updated_at=now()
		WHERE id=$1
		RETURNING created_at, updated_at`,
		u.ID, u.Username, u.PasswordHash, u.Email,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PgRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgRepo) one(ctx context.Context, q string, arg any) (User, error) {
	u, err := scanUser(r.DB.QueryRow(ctx, q, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
