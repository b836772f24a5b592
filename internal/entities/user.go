// Package entities contains core business entities.
package entities

// User is a registered account. Username is the unique key and the token subject.
type User struct {
	Username       string
	HashedPassword string
}

// Credentials carries a username and a plaintext password.
type Credentials struct {
	Username string
	Password string
}
