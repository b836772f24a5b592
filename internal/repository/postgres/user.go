package postgres

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const (
	insertUserQuery        = `INSERT INTO users(username, hashed_password) VALUES ($1, $2)`
	selectUserByNameQuery  = `SELECT username, hashed_password FROM users WHERE username = $1`
	uniqueViolationPgError = "23505"
)

// CreateUser hashes the password and inserts the user; a duplicate username maps to ErrUsernameTaken.
func (p *Postgres) CreateUser(ctx context.Context, creds entities.Credentials) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := p.db.Exec(ctx, insertUserQuery, creds.Username, string(hash)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationPgError {
			return fmt.Errorf("%w: %s", entities.ErrUsernameTaken, creds.Username)
		}
		p.log.Errorw("failed to insert user", "error", err, "username", creds.Username)
		return fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "username", creds.Username)
	return nil
}

// FindByUsernameAndPassword returns the user when the password matches.
func (p *Postgres) FindByUsernameAndPassword(ctx context.Context, creds entities.Credentials) (*entities.User, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByNameQuery, creds.Username).Scan(&u.Username, &u.HashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to select user", "error", err, "username", creds.Username)
		return nil, fmt.Errorf("select user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(creds.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return &u, nil
}
