// Package service defines interfaces for domain services implemented by infrastructure.
package service

// PasswordHasher hashes and verifies back-office passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
