package domain

import (
	"context"
	"fmt"

	"taskboard/internal/entities"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// CreateUser registers a new username.
func (u *Usecase) CreateUser(ctx context.Context, creds entities.Credentials) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}
	if len(creds.Password) > maxPasswordBytes {
		return fmt.Errorf("%w: password exceeds %d bytes", entities.ErrInvalidArgument, maxPasswordBytes)
	}
	if err := u.repo.CreateUser(ctx, creds); err != nil {
		return err
	}
	u.log.Infow("signup", "username", creds.Username)
	return nil
}

// FindByUsernameAndPassword fails with ErrUserNotFound for an unknown username
// and returns a nil user without error when the password does not match.
func (u *Usecase) FindByUsernameAndPassword(ctx context.Context, creds entities.Credentials) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}
	return u.repo.FindByUsernameAndPassword(ctx, creds)
}
