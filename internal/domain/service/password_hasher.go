// Package service declares the infrastructure capabilities the use cases depend on.
package service

// PasswordHasher hashes account passwords and verifies login attempts.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
