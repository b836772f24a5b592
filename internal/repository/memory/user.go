package memory

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// CreateUser hashes the password and stores the user under its username.
func (m *Memory) CreateUser(_ context.Context, creds entities.Credentials) error {
	m.usersMu.RLock()
	_, exists := m.users[creds.Username]
	m.usersMu.RUnlock()
	if exists {
		return fmt.Errorf("%w: %s", entities.ErrUsernameTaken, creds.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	m.usersMu.Lock()
	defer m.usersMu.Unlock()
	// re-check: another signup may have won while hashing
	if _, exists := m.users[creds.Username]; exists {
		return fmt.Errorf("%w: %s", entities.ErrUsernameTaken, creds.Username)
	}
	m.users[creds.Username] = entities.User{Username: creds.Username, HashedPassword: string(hash)}

	m.log.Infow("user created", "username", creds.Username)
	return nil
}

// FindByUsernameAndPassword returns the user when the password matches.
func (m *Memory) FindByUsernameAndPassword(_ context.Context, creds entities.Credentials) (*entities.User, error) {
	m.usersMu.RLock()
	u, ok := m.users[creds.Username]
	m.usersMu.RUnlock()
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(creds.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return &u, nil
}
